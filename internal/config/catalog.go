package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/TD-WeddingService/internal/domain"
)

type catalogFile struct {
	Venue struct {
		Vendor string `toml:"vendor"`
		Label  string `toml:"label"`
		Fee    int64  `toml:"fee"`
	} `toml:"venue"`
	Guests struct {
		Min     int `toml:"min"`
		Max     int `toml:"max"`
		Default int `toml:"default"`
	} `toml:"guests"`
	MaxPrice    float64           `toml:"max_price"`
	Categories  []catalogCategory `toml:"categories"`
	Streamlined *struct {
		Name        string   `toml:"name"`
		Headline    string   `toml:"headline"`
		Description string   `toml:"description"`
		Inclusions  []string `toml:"inclusions"`
		Price       int64    `toml:"price"`
	} `toml:"streamlined"`
}

type catalogCategory struct {
	Category     string          `toml:"category"`
	Vendor       string          `toml:"vendor"`
	DefaultValue string          `toml:"default_value"`
	Options      []catalogOption `toml:"options"`
}

type catalogOption struct {
	Value          string  `toml:"value"`
	Title          string  `toml:"title"`
	Subtitle       string  `toml:"subtitle"`
	PricingMode    string  `toml:"pricing_mode"`
	DefaultPrice   float64 `toml:"default_price"`
	VendorOverride string  `toml:"vendor_override"`
}

// LoadCatalog возвращает каталог опций
// Без файла используется встроенный каталог. Категории из файла заменяют встроенные целиком,
// поля площадки и пакета заменяются только если заданы
func (p PricingConfig) LoadCatalog() (domain.Catalog, error) {
	catalog := domain.DefaultCatalog()
	if p.DepositRate > 0 {
		catalog.DepositRate = p.DepositRate
	}

	if p.CatalogFile == "" {
		return catalog, nil
	}

	var file catalogFile
	if _, err := toml.DecodeFile(p.CatalogFile, &file); err != nil {
		return domain.Catalog{}, fmt.Errorf("failed to decode catalog file %s: %w", p.CatalogFile, err)
	}

	if err := mergeCatalog(&catalog, file); err != nil {
		return domain.Catalog{}, fmt.Errorf("catalog file %s: %w", p.CatalogFile, err)
	}

	return catalog, nil
}

func mergeCatalog(catalog *domain.Catalog, file catalogFile) error {
	if file.Venue.Vendor != "" {
		catalog.VenueVendor = file.Venue.Vendor
	}
	if file.Venue.Label != "" {
		catalog.VenueLabel = file.Venue.Label
	}
	if file.Venue.Fee > 0 {
		catalog.VenueFee = file.Venue.Fee
	}
	if catalog.VenueFee > domain.MaxPriceLimit {
		return fmt.Errorf("venue.fee %d exceeds %g", catalog.VenueFee, float64(domain.MaxPriceLimit))
	}

	if file.MaxPrice > 0 {
		catalog.MaxPrice = file.MaxPrice
	}
	if catalog.MaxPrice > domain.MaxPriceLimit {
		return fmt.Errorf("max_price %g exceeds %g", catalog.MaxPrice, float64(domain.MaxPriceLimit))
	}

	if file.Guests.Min > 0 {
		catalog.MinGuests = file.Guests.Min
	}
	if file.Guests.Max > 0 {
		catalog.MaxGuests = file.Guests.Max
	}
	if file.Guests.Default > 0 {
		catalog.DefaultGuestCount = file.Guests.Default
	}
	if catalog.MinGuests > catalog.MaxGuests {
		return fmt.Errorf("guests.min %d is greater than guests.max %d", catalog.MinGuests, catalog.MaxGuests)
	}
	if catalog.MaxGuests > domain.MaxGuestCountLimit {
		return fmt.Errorf("guests.max %d exceeds %d", catalog.MaxGuests, domain.MaxGuestCountLimit)
	}

	for _, fc := range file.Categories {
		options, err := toCategoryOptions(fc, catalog.MaxPrice)
		if err != nil {
			return err
		}

		existing, ok := catalog.Category(options.Category)
		if !ok {
			return fmt.Errorf("unknown category %q", fc.Category)
		}
		*existing = options
	}

	if s := file.Streamlined; s != nil {
		if s.Name != "" {
			catalog.Streamlined.Name = s.Name
		}
		if s.Headline != "" {
			catalog.Streamlined.Headline = s.Headline
		}
		if s.Description != "" {
			catalog.Streamlined.Description = s.Description
		}
		if len(s.Inclusions) > 0 {
			catalog.Streamlined.Inclusions = s.Inclusions
		}
		if s.Price > 0 {
			catalog.Streamlined.Price = s.Price
		}
		if catalog.Streamlined.Price > domain.MaxPriceLimit {
			return fmt.Errorf("streamlined.price %d exceeds %g", catalog.Streamlined.Price, float64(domain.MaxPriceLimit))
		}
	}

	return nil
}

func toCategoryOptions(fc catalogCategory, maxPrice float64) (domain.CategoryOptions, error) {
	if len(fc.Options) == 0 {
		return domain.CategoryOptions{}, fmt.Errorf("category %q has no options", fc.Category)
	}

	out := domain.CategoryOptions{
		Category:     domain.Category(fc.Category),
		Vendor:       fc.Vendor,
		DefaultValue: fc.DefaultValue,
		Options:      make([]domain.ServiceOption, 0, len(fc.Options)),
	}

	for _, fo := range fc.Options {
		mode := domain.PricingMode(fo.PricingMode)
		if mode != domain.PricingPerGuest && mode != domain.PricingFlat {
			return domain.CategoryOptions{}, fmt.Errorf("category %q option %q: unknown pricing_mode %q",
				fc.Category, fo.Value, fo.PricingMode)
		}
		if fo.DefaultPrice < 0 {
			return domain.CategoryOptions{}, fmt.Errorf("category %q option %q: negative default_price",
				fc.Category, fo.Value)
		}
		if fo.DefaultPrice > maxPrice {
			return domain.CategoryOptions{}, fmt.Errorf("category %q option %q: default_price exceeds max_price %g",
				fc.Category, fo.Value, maxPrice)
		}

		opt := domain.ServiceOption{
			Value:        fo.Value,
			Title:        fo.Title,
			Subtitle:     fo.Subtitle,
			PricingMode:  mode,
			DefaultPrice: fo.DefaultPrice,
		}
		if fo.VendorOverride != "" {
			vendor := fo.VendorOverride
			opt.VendorOverride = &vendor
		}
		out.Options = append(out.Options, opt)
	}

	if out.DefaultValue == "" {
		out.DefaultValue = out.Options[0].Value
	}
	if _, ok := out.Find(out.DefaultValue); !ok {
		return domain.CategoryOptions{}, fmt.Errorf("category %q: default_value %q is not an option",
			fc.Category, out.DefaultValue)
	}

	return out, nil
}
