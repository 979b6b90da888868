package domain

// PricingMode determines how an option's price is applied
type PricingMode string

const (
	PricingPerGuest PricingMode = "perGuest"
	PricingFlat     PricingMode = "flat"
)

// IsPerGuest returns true if the price is multiplied by the guest count
func (m PricingMode) IsPerGuest() bool {
	return m == PricingPerGuest
}

// Category is one configurable part of a custom plan
type Category string

const (
	CategoryFood        Category = "food"
	CategoryBeverage    Category = "beverage"
	CategoryCake        Category = "cake"
	CategoryFloral      Category = "floral"
	CategoryCoordinator Category = "coordinator"
	CategoryOfficiant   Category = "officiant"
)

// Categories lists the configurable categories in estimate order
var Categories = []Category{
	CategoryFood,
	CategoryBeverage,
	CategoryCake,
	CategoryFloral,
	CategoryCoordinator,
	CategoryOfficiant,
}

// ServiceOption is one selectable choice within a category
type ServiceOption struct {
	Value          string
	Title          string
	Subtitle       string
	PricingMode    PricingMode
	DefaultPrice   float64
	VendorOverride *string
}

// CategoryOptions holds the ordered options of a category and its default vendor
// The first option is the fallback for unknown selection values
type CategoryOptions struct {
	Category     Category
	Vendor       string
	DefaultValue string // значение, предвыбранное в форме
	Options      []ServiceOption
}

// Find returns the option with the given value
func (c *CategoryOptions) Find(value string) (ServiceOption, bool) {
	for _, opt := range c.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return ServiceOption{}, false
}

// Resolve returns the option with the given value or the first option when the value is unknown
// The second result is false when the fallback was used
func (c *CategoryOptions) Resolve(value string) (ServiceOption, bool) {
	if opt, ok := c.Find(value); ok {
		return opt, true
	}
	if len(c.Options) == 0 {
		return ServiceOption{PricingMode: PricingFlat}, false
	}
	return c.Options[0], false
}

// VendorFor returns the option's vendor override or the category vendor
func (c *CategoryOptions) VendorFor(opt ServiceOption) string {
	if opt.VendorOverride != nil && *opt.VendorOverride != "" {
		return *opt.VendorOverride
	}
	return c.Vendor
}

// StreamlinedPackage is the fixed-price booking option without per-category configuration
type StreamlinedPackage struct {
	Name        string
	Headline    string
	Description string
	Inclusions  []string
	Price       int64
}

// Catalog is the pricing configuration: venue fee, deposit rate, category tables and the streamlined package
type Catalog struct {
	VenueVendor string
	VenueLabel  string
	VenueFee    int64
	DepositRate float64

	MinGuests         int
	MaxGuests         int
	DefaultGuestCount int

	MaxPrice float64 // цена из формы выше этой границы урезается

	Categories  []CategoryOptions
	Streamlined StreamlinedPackage
}

// Category returns the options table of a category
func (c *Catalog) Category(category Category) (*CategoryOptions, bool) {
	for i := range c.Categories {
		if c.Categories[i].Category == category {
			return &c.Categories[i], true
		}
	}
	return nil, false
}
