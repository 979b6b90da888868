package domain

// Pricing defaults
const (
	MinGuestCount      = 10
	MaxGuestCount      = 120
	DefaultGuestCount  = 35
	DefaultDepositRate = 0.25

	// DefaultMaxPrice верхняя граница цены опции, присланной в форме
	DefaultMaxPrice = 100000.0

	// Границы настраиваемых лимитов: MaxPriceLimit * MaxGuestCountLimit * (категории + 1) помещается в int64
	MaxPriceLimit      = 1e9
	MaxGuestCountLimit = 10000
)

// Business validation constants
const (
	MinPrimaryNameLength    = 2
	MaxPrimaryNameLength    = 255
	MaxPartnerNameLength    = 255
	MaxEmailLength          = 255
	MinPhoneLength          = 7
	MaxPhoneLength          = 64
	MaxPronounsLength       = 64
	MaxUIDLength            = 128
	MaxIdempotencyKeyLength = 255
	MaxNotesLength          = 1000
	MaxReplyLength          = 5000
	MaxAvailabilityDays     = 366
	DefaultListLimit        = 50
	MaxListLimit            = 200
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
