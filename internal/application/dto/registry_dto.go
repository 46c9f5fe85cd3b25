package dto

import "github.com/shopspring/decimal"

// SupplierDTO fornecedor.
type SupplierDTO struct {
	ID                string `json:"id,omitempty"`
	Name              string `json:"name" validate:"required,max=200"`
	TradeName         string `json:"trade_name"`
	Address           string `json:"address"`
	City              string `json:"city"`
	State             string `json:"state" validate:"omitempty,len=2"`
	ZipCode           string `json:"zip_code"`
	Phone             string `json:"phone"`
	Email             string `json:"email" validate:"omitempty,email"`
	CNPJ              string `json:"cnpj"`
	StateRegistration string `json:"state_registration"`
}

// CatalogItemDTO ítem del catálogo de materiales.
type CatalogItemDTO struct {
	ID          string          `json:"id,omitempty"`
	Description string          `json:"description" validate:"required,max=300"`
	Unit        string          `json:"unit" validate:"required,max=20"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"gte=0"`
}

// SiteDTO obra.
type SiteDTO struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name" validate:"required,max=200"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// EngineerDTO engenheiro con las obras a su cargo.
type EngineerDTO struct {
	ID      string   `json:"id,omitempty"`
	Name    string   `json:"name" validate:"required"`
	Email   string   `json:"email" validate:"required,email"`
	SiteIDs []string `json:"site_ids" validate:"dive,required"`
}

// PurchaseRequestItemDTO ítem pedido en una solicitação.
type PurchaseRequestItemDTO struct {
	ItemID      string          `json:"item_id" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity" validate:"gt=0"`
	Description string          `json:"description,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// PurchaseRequestDTO solicitação de materiales.
type PurchaseRequestDTO struct {
	ID         string                   `json:"id,omitempty"`
	SiteID     string                   `json:"site_id" validate:"required"`
	SiteName   string                   `json:"site_name,omitempty"`
	SupplierID string                   `json:"supplier_id"`
	Note       string                   `json:"note"`
	Shipping   decimal.Decimal          `json:"shipping" validate:"gte=0"`
	Items      []PurchaseRequestItemDTO `json:"items" validate:"required,min=1,dive"`
}

// UserRequest alta/edición de usuario. En edición password vacío conserva la actual.
type UserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=admin user engenheiro"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// UserResponse usuario sin credenciales.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginRequest credenciales.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido por la API remota y datos básicos del usuario.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   int64        `json:"expires_at,omitempty"`
	User        UserResponse `json:"user"`
}
