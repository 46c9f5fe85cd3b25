// Package cli comandos de melo: recálculo e impresión de pedidos sin conexión e
// importación del catálogo de ítems a la API remota.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/jhoicas/melo-compras/pkg/config"
	"github.com/jhoicas/melo-compras/pkg/logger"
)

// app estado compartido por los subcomandos (flags globales y salidas).
type app struct {
	out     io.Writer
	errOut  io.Writer
	cfgFile string
	verbose bool
}

// NewRootCmd arma el árbol de comandos:
//
//	melo
//	├── recalc --order pedido.yaml [--catalog itens.yaml]
//	├── pdf    --order pedido.yaml [-o pedido.pdf]
//	└── itens
//	    └── import --file itens.csv [--encoding latin1]
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	root := &cobra.Command{
		Use:   "melo",
		Short: "Herramientas de compras de Melo Engenharia",
		Long: `melo recalcula e imprime pedidos de compra sin conexión, con el mismo motor de
precios del servidor, e importa el catálogo de ítems desde planillas CSV o XLSX.

Ejemplos:
  melo recalc --order pedido.yaml --catalog itens.yaml
  melo pdf --order pedido.yaml -o pedido_101.pdf
  melo itens import --file itens.csv --encoding latin1 --token $MELO_TOKEN`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "archivo de configuración (por defecto .env/config en el directorio actual)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log detallado en stderr")

	root.AddCommand(a.newRecalcCmd(), a.newPDFCmd(), a.newItensCmd())
	return root
}

func (a *app) config() (*config.Config, error) {
	if a.cfgFile != "" {
		return config.LoadFile(a.cfgFile)
	}
	return config.Load()
}

func (a *app) logger() *logger.Logger {
	level := "warn"
	if a.verbose {
		level = "debug"
	}
	return logger.New(logger.Config{Env: "development", Level: level, Out: a.errOut})
}
