package entity

// Supplier representa un fornecedor.
type Supplier struct {
	ID                string
	Name              string // razón social ("fornecedor" en la API)
	TradeName         string // nome fantasia
	Address           string
	City              string
	State             string
	ZipCode           string
	Phone             string
	Email             string
	CNPJ              string
	StateRegistration string // inscrição estadual
}
