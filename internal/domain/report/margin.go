package report

import (
	"fmt"

	"github.com/oottupura/oottupura-api/internal/domain/enum"
)

// ComputeMargin converts a cook's base price and a margin policy into the
// per-unit platform markup. A percent policy yields basePrice*value/100,
// a fixed policy yields the value itself regardless of base price. An
// unset policy type is treated as percent, so the zero policy produces a
// zero markup.
func ComputeMargin(basePrice float64, marginType enum.MarginType, marginValue float64) (float64, error) {
	if basePrice < 0 {
		return 0, fmt.Errorf("%w: negative base price %.2f", ErrInvalidMarginInput, basePrice)
	}
	if marginValue < 0 {
		return 0, fmt.Errorf("%w: negative margin value %.2f", ErrInvalidMarginInput, marginValue)
	}

	switch marginType {
	case enum.MarginTypeFixed:
		return marginValue, nil
	case enum.MarginTypePercent, "":
		return basePrice * marginValue / 100, nil
	default:
		return 0, fmt.Errorf("%w: unknown margin type %q", ErrInvalidMarginInput, marginType)
	}
}
