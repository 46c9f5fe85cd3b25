package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount convierte la entrada del usuario en un monto no negativo.
// Vacío, texto no numérico o negativo valen 0. Acepta coma decimal ("10,50")
// cuando no hay punto en el texto.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		if strings.Count(s, ",") != 1 || strings.Contains(s, ".") {
			return decimal.Zero
		}
		d, err = decimal.NewFromString(strings.Replace(s, ",", ".", 1))
		if err != nil {
			return decimal.Zero
		}
	}
	return NonNegative(d)
}

// NonNegative devuelve d o 0 si d < 0.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// FormatAmount dos decimales con punto, como se muestran los totales en pantalla.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
