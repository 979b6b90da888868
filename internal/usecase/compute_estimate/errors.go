package compute_estimate

import "errors"

var (
	// ErrInvalidPlanType возвращается при неизвестном типе плана
	ErrInvalidPlanType = errors.New("compute_estimate: invalid plan type")
)
