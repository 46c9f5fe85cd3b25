package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/domain/pricing"
	infrapdf "github.com/jhoicas/melo-compras/internal/infrastructure/pdf"
)

func (a *app) newPDFCmd() *cobra.Command {
	var (
		orderPath   string
		catalogPath string
		outPath     string
	)
	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Genera el PDF de un pedido yaml sin pasar por la API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
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
			doc := of.document(entity.CompanyProfile{
				Name:    cfg.Company.Name,
				Address: cfg.Company.Address,
				CNPJ:    cfg.Company.CNPJ,
				Phone:   cfg.Company.Phone,
			}, catalog)

			body, err := infrapdf.NewMarotoPDFGenerator().GenerateOrderPDF(context.Background(), doc)
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = doc.FileName()
			}
			if err := os.WriteFile(outPath, body, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", outPath, err)
			}
			fmt.Fprintf(a.out, "%s (total geral %s)\n", outPath, infrapdf.Money(doc.Order.GrandTotal))
			return nil
		},
	}
	cmd.Flags().StringVar(&orderPath, "order", "", "pedido en yaml")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catálogo en yaml")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "archivo de salida (por defecto pedido_<número>.pdf)")
	_ = cmd.MarkFlagRequired("order")
	return cmd
}
