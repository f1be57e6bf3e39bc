package profiler

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var numberPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatNumber renders a value for the summary table: integral values become
// grouped integers ("5", "1,234"), anything else keeps up to two fraction
// digits with the integer portion still grouped ("53.78", "1,234.5").
func FormatNumber(val float64) string {
	if val == math.Trunc(val) && !math.IsInf(val, 0) {
		return numberPrinter.Sprint(number.Decimal(int64(val)))
	}

	return numberPrinter.Sprint(number.Decimal(val, number.MaxFractionDigits(2)))
}
