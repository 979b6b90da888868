package domain

const venueSupportVendor = "Tiny Diner Venue Support"

// DefaultCatalog returns the Tiny Diner option tables
func DefaultCatalog() Catalog {
	override := func() *string {
		v := venueSupportVendor
		return &v
	}

	return Catalog{
		VenueVendor:       "Tiny Diner Venue & Staffing",
		VenueLabel:        "Venue reservation & staffing",
		VenueFee:          2600,
		DepositRate:       DefaultDepositRate,
		MinGuests:         MinGuestCount,
		MaxGuests:         MaxGuestCount,
		DefaultGuestCount: DefaultGuestCount,
		MaxPrice:          DefaultMaxPrice,
		Categories: []CategoryOptions{
			{
				Category:     CategoryFood,
				Vendor:       "Local Effort",
				DefaultValue: "buffet",
				Options: []ServiceOption{
					{Value: "buffet", Title: "Local Effort seasonal buffet", Subtitle: "Relaxed, grazing stations ideal for mingling", PricingMode: PricingPerGuest, DefaultPrice: 62},
					{Value: "plated", Title: "Local Effort plated dinner", Subtitle: "Coursed dining with full service team", PricingMode: PricingPerGuest, DefaultPrice: 88},
					{Value: "appetizers", Title: "Local Effort passed appetizers", Subtitle: "Cocktail-forward mix & mingle experience", PricingMode: PricingPerGuest, DefaultPrice: 42},
					{Value: "notRequired", Title: "Outside catering support", Subtitle: "Not required — facility support fee per guest", PricingMode: PricingPerGuest, DefaultPrice: 12, VendorOverride: override()},
				},
			},
			{
				Category:     CategoryBeverage,
				Vendor:       "Tiny Diner Beverage Collective",
				DefaultValue: "wine",
				Options: []ServiceOption{
					{Value: "wine", Title: "Beer, wine & NA bar", Subtitle: "Local selections plus coffee service", PricingMode: PricingPerGuest, DefaultPrice: 26},
					{Value: "cocktails", Title: "Signature cocktail program", Subtitle: "Custom drinks designed with our bar team", PricingMode: PricingPerGuest, DefaultPrice: 34},
					{Value: "na", Title: "Zero-proof service", Subtitle: "Craft sodas, shrubs, and espresso bar", PricingMode: PricingPerGuest, DefaultPrice: 15},
					{Value: "notRequired", Title: "Outside beverage program", Subtitle: "Not required — service oversight fee", PricingMode: PricingFlat, DefaultPrice: 250, VendorOverride: override()},
				},
			},
			{
				Category:     CategoryCake,
				Vendor:       "Local Effort",
				DefaultValue: "need",
				Options: []ServiceOption{
					{Value: "need", Title: "Local Effort dessert table", Subtitle: "Layered buttercream cakes & sweets", PricingMode: PricingFlat, DefaultPrice: 480},
					{Value: "bring", Title: "Couple-provided desserts", Subtitle: "Storage & service support from our team", PricingMode: PricingFlat, DefaultPrice: 180, VendorOverride: override()},
					{Value: "notRequired", Title: "No dessert service", Subtitle: "Not required for this celebration", PricingMode: PricingFlat, DefaultPrice: 0},
				},
			},
			{
				Category:     CategoryFloral,
				Vendor:       "Studio Emme",
				DefaultValue: "inHouse",
				Options: []ServiceOption{
					{Value: "inHouse", Title: "Studio Emme floral design", Subtitle: "Seasonal florals with candles and styling", PricingMode: PricingFlat, DefaultPrice: 780},
					{Value: "bring", Title: "Outside florist collaboration", Subtitle: "Timeline, setup, and breakdown coordination", PricingMode: PricingFlat, DefaultPrice: 220, VendorOverride: override()},
					{Value: "notRequired", Title: "Minimal styling only", Subtitle: "Not required — couple will keep decor simple", PricingMode: PricingFlat, DefaultPrice: 0},
				},
			},
			{
				Category:     CategoryCoordinator,
				Vendor:       "Tiny Diner Experience Team",
				DefaultValue: "dayOf",
				Options: []ServiceOption{
					{Value: "fullPlanning", Title: "Full planning partnership", Subtitle: "12-week planning with design and logistics", PricingMode: PricingFlat, DefaultPrice: 1500},
					{Value: "dayOf", Title: "Day-of coordination", Subtitle: "Timeline management + vendor wrangling", PricingMode: PricingFlat, DefaultPrice: 750},
					{Value: "notRequired", Title: "Venue host handoff", Subtitle: "Not required — includes operations lead", PricingMode: PricingFlat, DefaultPrice: 250, VendorOverride: override()},
				},
			},
			{
				Category:     CategoryOfficiant,
				Vendor:       "Tiny Diner Officiant Collective",
				DefaultValue: "bring",
				Options: []ServiceOption{
					{Value: "provide", Title: "Tiny Diner officiant", Subtitle: "Inclusive scripts + rehearsal support", PricingMode: PricingFlat, DefaultPrice: 450},
					{Value: "bring", Title: "Couple-provided officiant", Subtitle: "Timeline coordination & mic check", PricingMode: PricingFlat, DefaultPrice: 180, VendorOverride: override()},
					{Value: "notRequired", Title: "No officiant support", Subtitle: "Not required for this event", PricingMode: PricingFlat, DefaultPrice: 0},
				},
			},
		},
		Streamlined: StreamlinedPackage{
			Name:        "Tiny Diner Signature",
			Headline:    "Just show up and celebrate. We handle the rest.",
			Description: "Our streamlined celebration locks in a curated 4-hour experience with food, beverage, design touches, and a personal Tiny Diner host.",
			Inclusions: []string{
				"Dedicated Tiny Diner event host & team",
				"Up to 35 guests",
				"Passed appetizers by Local Effort",
				"Beer, wine, and craft NA beverage service",
				"On-site coordination & timeline support",
			},
			Price: 4000,
		},
	}
}
