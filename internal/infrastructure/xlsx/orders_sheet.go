// Package xlsx exporta el listado de pedidos a una planilla Excel.
package xlsx

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/melo-compras/internal/application/procurement"
)

var _ procurement.OrdersSheetWriter = (*OrdersSheet)(nil)

// SheetName nombre de la hoja con el listado.
const SheetName = "Pedidos"

var headers = []string{"Nº Pedido", "Data", "Obra", "Fornecedor", "Status", "Itens", "Frete", "Total Geral"}

// OrdersSheet implementa procurement.OrdersSheetWriter con excelize.
type OrdersSheet struct{}

// NewOrdersSheet construye el writer.
func NewOrdersSheet() *OrdersSheet { return &OrdersSheet{} }

// WriteOrders escribe una fila por pedido y una fila final con la suma de los totales.
func (s *OrdersSheet) WriteOrders(ctx context.Context, w io.Writer, rows []procurement.OrderDocument) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#006E3F"}},
	})
	if err != nil {
		return fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return fmt.Errorf("xlsx: estilo monto: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: 4})
	if err != nil {
		return fmt.Errorf("xlsx: estilo total: %w", err)
	}

	for i, h := range headers {
		if err := setCell(f, i+1, 1, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SheetName, "A1", "H1", headerStyle); err != nil {
		return fmt.Errorf("xlsx: aplicar estilo encabezado: %w", err)
	}

	sum := decimal.Zero
	for i, d := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		r := i + 2
		o := d.Order
		date := ""
		if !o.CreatedAt.IsZero() {
			date = o.CreatedAt.Format("02/01/2006")
		}
		values := []any{
			o.Number, date, d.SiteName, d.SupplierName, o.Status, len(o.Items),
			o.ShippingCost.InexactFloat64(), o.GrandTotal.InexactFloat64(),
		}
		for c, v := range values {
			if err := setCell(f, c+1, r, v); err != nil {
				return err
			}
		}
		if err := f.SetCellStyle(SheetName, fmt.Sprintf("G%d", r), fmt.Sprintf("H%d", r), moneyStyle); err != nil {
			return fmt.Errorf("xlsx: aplicar estilo fila %d: %w", r, err)
		}
		sum = sum.Add(o.GrandTotal)
	}

	totalRow := len(rows) + 2
	if err := setCell(f, 1, totalRow, "TOTAL"); err != nil {
		return err
	}
	if err := setCell(f, 8, totalRow, sum.InexactFloat64()); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("H%d", totalRow), totalStyle); err != nil {
		return fmt.Errorf("xlsx: aplicar estilo total: %w", err)
	}

	widths := []float64{12, 12, 28, 32, 12, 8, 14, 16}
	for i, wd := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("xlsx: columna %d: %w", i+1, err)
		}
		if err := f.SetColWidth(SheetName, col, col, wd); err != nil {
			return fmt.Errorf("xlsx: ancho columna %s: %w", col, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx: escribir planilla: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("xlsx: celda %d,%d: %w", col, row, err)
	}
	if err := f.SetCellValue(SheetName, cell, v); err != nil {
		return fmt.Errorf("xlsx: escribir %s: %w", cell, err)
	}
	return nil
}
