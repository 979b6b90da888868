package get_availability

import "errors"

var (
	// ErrInvalidRange возвращается, когда начало периода позже конца
	ErrInvalidRange = errors.New("get_availability: from must not be after to")

	// ErrRangeTooLong возвращается, когда период длиннее допустимого
	ErrRangeTooLong = errors.New("get_availability: range is too long")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")
)
