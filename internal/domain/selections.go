package domain

// Selections is the raw custom-plan form input
// Nil numbers mean "not provided" and fall back to defaults during normalization
type Selections struct {
	GuestCount *float64

	FoodStyle   string
	Beverage    string
	Cake        string
	Floral      string
	Coordinator string
	Officiant   string

	FoodPrice        *float64
	BeveragePrice    *float64
	CakePrice        *float64
	FloralPrice      *float64
	CoordinatorPrice *float64
	OfficiantPrice   *float64

	Notes string

	// Rejected holds the original text of numeric fields that were sent as non-numbers,
	// keyed by field name (guestCount, foodPrice, ...). Such fields stay nil
	Rejected map[string]string
}

// RejectedInput returns the original text of a non-numeric field
func (s *Selections) RejectedInput(field string) (string, bool) {
	raw, ok := s.Rejected[field]
	return raw, ok
}

// Choice returns the selected value and raw price override of a category
func (s *Selections) Choice(c Category) (string, *float64) {
	switch c {
	case CategoryFood:
		return s.FoodStyle, s.FoodPrice
	case CategoryBeverage:
		return s.Beverage, s.BeveragePrice
	case CategoryCake:
		return s.Cake, s.CakePrice
	case CategoryFloral:
		return s.Floral, s.FloralPrice
	case CategoryCoordinator:
		return s.Coordinator, s.CoordinatorPrice
	case CategoryOfficiant:
		return s.Officiant, s.OfficiantPrice
	default:
		return "", nil
	}
}

// CustomSelections is the normalized custom plan: every value resolved, every price sanitized
type CustomSelections struct {
	GuestCount int

	FoodStyle   string
	Beverage    string
	Cake        string
	Floral      string
	Coordinator string
	Officiant   string

	FoodPrice        float64
	BeveragePrice    float64
	CakePrice        float64
	FloralPrice      float64
	CoordinatorPrice float64
	OfficiantPrice   float64

	Notes string
}

// Choice returns the resolved value and price of a category
func (s *CustomSelections) Choice(c Category) (string, float64) {
	switch c {
	case CategoryFood:
		return s.FoodStyle, s.FoodPrice
	case CategoryBeverage:
		return s.Beverage, s.BeveragePrice
	case CategoryCake:
		return s.Cake, s.CakePrice
	case CategoryFloral:
		return s.Floral, s.FloralPrice
	case CategoryCoordinator:
		return s.Coordinator, s.CoordinatorPrice
	case CategoryOfficiant:
		return s.Officiant, s.OfficiantPrice
	default:
		return "", 0
	}
}

// SetChoice stores the resolved value and price of a category
func (s *CustomSelections) SetChoice(c Category, value string, price float64) {
	switch c {
	case CategoryFood:
		s.FoodStyle, s.FoodPrice = value, price
	case CategoryBeverage:
		s.Beverage, s.BeveragePrice = value, price
	case CategoryCake:
		s.Cake, s.CakePrice = value, price
	case CategoryFloral:
		s.Floral, s.FloralPrice = value, price
	case CategoryCoordinator:
		s.Coordinator, s.CoordinatorPrice = value, price
	case CategoryOfficiant:
		s.Officiant, s.OfficiantPrice = value, price
	}
}
