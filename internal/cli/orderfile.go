package cli

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/melo-compras/internal/application/procurement"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/pricing"
)

// orderFile pedido escrito a mano para recalcular o imprimir sin la API.
//
//	numero: "101"
//	fornecedor: Casa do Construtor LTDA
//	obra: Residencial Nova Caruaru
//	frete: 3
//	itens:
//	  - descricao: Cimento CP-II 50kg
//	    quantidade: 2
//	    unidade: SC
//	    preco: 38.90
//
// Los montos se leen como texto y pasan por el mismo parseo que la pantalla de edición.
type orderFile struct {
	Number   string          `yaml:"numero"`
	Supplier string          `yaml:"fornecedor"`
	Site     string          `yaml:"obra"`
	Note     string          `yaml:"observacao"`
	Shipping string          `yaml:"frete"`
	Items    []orderFileLine `yaml:"itens"`
}

type orderFileLine struct {
	Description string `yaml:"descricao"`
	Quantity    string `yaml:"quantidade"`
	Unit        string `yaml:"unidade"`
	UnitPrice   string `yaml:"preco"`
}

// catalogFileItem entrada de itens.yaml.
type catalogFileItem struct {
	Description string `yaml:"descricao"`
	Unit        string `yaml:"unidade"`
	UnitPrice   string `yaml:"preco"`
}

func readOrderFile(path string) (*orderFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir pedido: %w", err)
	}
	defer f.Close()
	return decodeOrderFile(f)
}

func decodeOrderFile(r io.Reader) (*orderFile, error) {
	var of orderFile
	if err := yaml.NewDecoder(r).Decode(&of); err != nil {
		return nil, fmt.Errorf("leer pedido yaml: %w", err)
	}
	return &of, nil
}

func readCatalogYAML(path string) (pricing.CatalogIndex, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("abrir catálogo: %w", err)
	}
	var items []catalogFileItem
	if err := yaml.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("leer catálogo yaml: %w", err)
	}
	list := make([]*entity.CatalogItem, 0, len(items))
	for _, it := range items {
		list = append(list, &entity.CatalogItem{
			Description: it.Description,
			Unit:        it.Unit,
			UnitPrice:   pricing.ParseAmount(it.UnitPrice),
		})
	}
	return pricing.NewCatalogIndex(list), nil
}

// toOrder arma el pedido con las mismas operaciones del editor: la descripción se
// resuelve contra el catálogo y después unidad y precio explícitos la pisan.
func (of *orderFile) toOrder(catalog pricing.Catalog) entity.PurchaseOrder {
	o := entity.PurchaseOrder{
		Number:       of.Number,
		Status:       entity.OrderStatusPending,
		SupplierName: of.Supplier,
		SiteName:     of.Site,
		Note:         of.Note,
	}
	for _, l := range of.Items {
		o = pricing.AddLine(o)
		i := len(o.Items) - 1
		o = pricing.SetLineField(o, i, pricing.FieldDescription, l.Description, catalog)
		if l.Unit != "" {
			o = pricing.SetLineField(o, i, pricing.FieldUnit, l.Unit, catalog)
		}
		if l.UnitPrice != "" {
			o = pricing.SetLineField(o, i, pricing.FieldUnitPrice, l.UnitPrice, catalog)
		}
		if l.Quantity != "" {
			o = pricing.SetLineField(o, i, pricing.FieldQuantity, l.Quantity, catalog)
		}
	}
	return pricing.SetShipping(o, of.Shipping)
}

func (of *orderFile) document(company entity.CompanyProfile, catalog pricing.Catalog) procurement.OrderDocument {
	o := of.toOrder(catalog)
	return procurement.OrderDocument{
		Company:      company,
		Order:        o,
		SupplierName: orNA(of.Supplier),
		SiteName:     orNA(of.Site),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
