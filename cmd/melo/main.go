// melo herramientas de línea de comandos de compras (recalc, pdf, itens import).
package main

import (
	"os"

	"github.com/jhoicas/melo-compras/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
