package enum

import (
	"database/sql/driver"
	"fmt"
)

// MarginType selects how the platform markup is derived from a cook's base price
type MarginType string

const (
	// MarginTypePercent applies the margin value as a percentage of the base price
	MarginTypePercent MarginType = "percent"
	// MarginTypeFixed applies the margin value as a flat per-unit amount
	MarginTypeFixed MarginType = "fixed"
)

func (m MarginType) String() string {
	return string(m)
}

// IsValid reports whether m is a known margin type
func (m MarginType) IsValid() bool {
	return m == MarginTypePercent || m == MarginTypeFixed
}

func (m MarginType) Value() (driver.Value, error) {
	return string(m), nil
}

func (m *MarginType) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		// Unset margin policy defaults to percent; paired with a zero
		// value this yields a zero markup.
		*m = MarginTypePercent
	case string:
		*m = MarginType(v)
	case []byte:
		*m = MarginType(v)
	default:
		return fmt.Errorf("cannot scan %T into MarginType", value)
	}
	return nil
}
