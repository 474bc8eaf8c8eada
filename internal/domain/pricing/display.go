package pricing

import (
	"math"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Rounding picks the direction used when a marked-up value is cut to cents.
type Rounding int

const (
	RoundNearest Rounding = iota
	RoundDown
	RoundUp
)

const displayPlaces = 2

var hundred = decimal.NewFromInt(100)

// ApplyMarkup returns value * (1 + markup/100) rounded to cents. It is a
// display transform only; stored totals stay raw. Non-finite inputs count as
// zero.
func ApplyMarkup(value, markupPercent float64, rounding Rounding) float64 {
	if !isFinite(value) {
		log.Warn().Float64("value", value).Msg("[pricing][display] non-finite total; showing zero")
		return 0
	}
	if !isFinite(markupPercent) || markupPercent < 0 {
		markupPercent = 0
	}
	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(markupPercent).Div(hundred))
	v := decimal.NewFromFloat(value).Mul(factor)

	switch rounding {
	case RoundDown:
		v = v.RoundFloor(displayPlaces)
	case RoundUp:
		v = v.RoundCeil(displayPlaces)
	default:
		v = v.Round(displayPlaces)
	}
	return v.InexactFloat64()
}

// DisplayRange is what a customer-facing surface shows.
type DisplayRange struct {
	Min    float64
	Max    float64
	Single bool
}

// Display marks up both bounds, rounding the low bound down and the high bound
// up. Whether a single price is shown is decided on the raw totals.
func Display(t Totals, markupPercent float64) DisplayRange {
	if t.IsSinglePrice() {
		v := ApplyMarkup(t.MinTotal, markupPercent, RoundNearest)
		return DisplayRange{Min: v, Max: v, Single: true}
	}
	return DisplayRange{
		Min: ApplyMarkup(t.MinTotal, markupPercent, RoundDown),
		Max: ApplyMarkup(t.MaxTotal, markupPercent, RoundUp),
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
