// Package report implements the financial reporting and reconciliation
// engine: platform margin calculation, the delivered-order ledger fold,
// and the profit-and-loss reconciliation across the cook, delivery and
// referral sub-ledgers. The package is pure computation over snapshots
// supplied by the caller; it owns no persistence and no transport.
package report

import "errors"

var (
	// ErrInvalidMarginInput is returned when a margin calculation is asked
	// to work with a negative base price or margin value. Bad pricing
	// configuration is rejected, never clamped.
	ErrInvalidMarginInput = errors.New("invalid margin input")

	// ErrInvalidOrderRecord is returned when an order cannot be placed in
	// the ledger, e.g. its created_at timestamp is missing. The whole
	// batch fails rather than silently undercounting revenue.
	ErrInvalidOrderRecord = errors.New("invalid order record")

	// ErrUpstreamUnavailable is returned when one of the report's data
	// sources cannot be read. No partial or estimated figures are ever
	// produced in that case.
	ErrUpstreamUnavailable = errors.New("upstream source unavailable")
)
