package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/melo-compras/internal/application/procurement"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/pricing"
)

func (a *app) newRecalcCmd() *cobra.Command {
	var (
		orderPath   string
		catalogPath string
		asJSON      bool
	)
	cmd := &cobra.Command{
		Use:   "recalc",
		Short: "Recalcula totales de línea, frete y total general de un pedido yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			of, err := readOrderFile(orderPath)
			if err != nil {
				return err
			}
			var catalog pricing.Catalog
			if catalogPath != "" {
				idx, err := readCatalogYAML(catalogPath)
				if err != nil {
					return err
				}
				catalog = idx
			}
			o := of.toOrder(catalog)
			if asJSON {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				return enc.Encode(procurement.OrderToDTO(o))
			}
			return printOrder(a, o)
		},
	}
	cmd.Flags().StringVar(&orderPath, "order", "", "pedido en yaml")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catálogo en yaml para completar unidad y precio por descripción")
	cmd.Flags().BoolVar(&asJSON, "json", false, "salida JSON en lugar de tabla")
	_ = cmd.MarkFlagRequired("order")
	return cmd
}

func printOrder(a *app, o entity.PurchaseOrder) error {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tDESCRIÇÃO\tQUANT.\tUNIDADE\tPREÇO UNIT.\tPREÇO TOTAL\t")
	for i, it := range o.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t\n", i+1, it.Description, it.Quantity.String(), it.Unit,
			pricing.FormatAmount(it.UnitPrice), pricing.FormatAmount(it.LineTotal))
	}
	fmt.Fprintf(tw, "\t\t\t\tFRETE\t%s\t\n", pricing.FormatAmount(o.ShippingCost))
	fmt.Fprintf(tw, "\t\t\t\tTOTAL GERAL\t%s\t\n", pricing.FormatAmount(o.GrandTotal))
	return tw.Flush()
}
