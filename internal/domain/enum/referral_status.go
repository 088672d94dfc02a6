package enum

import (
	"database/sql/driver"
	"fmt"
)

// ReferralStatus represents the payment state of a referral commission
type ReferralStatus string

const (
	ReferralStatusPending   ReferralStatus = "pending"
	ReferralStatusPaid      ReferralStatus = "paid"
	ReferralStatusCancelled ReferralStatus = "cancelled"
)

func (s ReferralStatus) String() string {
	return string(s)
}

// IsPaid reports whether the commission has been settled. Only paid
// commissions reduce net profit; every status is still reported.
func (s ReferralStatus) IsPaid() bool {
	return s == ReferralStatusPaid
}

func (s ReferralStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *ReferralStatus) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = ReferralStatusPending
	case string:
		*s = ReferralStatus(v)
	case []byte:
		*s = ReferralStatus(v)
	default:
		return fmt.Errorf("cannot scan %T into ReferralStatus", value)
	}
	return nil
}
