package console

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.Spanish)

// FormatMoney formatea un importe en soles con separador de miles local.
func FormatMoney(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return moneyPrinter.Sprintf("S/ %.2f", f)
}
