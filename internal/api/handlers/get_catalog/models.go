package get_catalog

import (
	"github.com/m04kA/TD-WeddingService/internal/domain"
	"github.com/m04kA/TD-WeddingService/internal/service/requests/models"
)

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Venue       VenueResponse              `json:"venue"`
	DepositRate float64                    `json:"depositRate"`
	Guests      GuestsResponse             `json:"guests"`
	Categories  []CategoryResponse         `json:"categories"`
	Defaults    *models.SelectionsResponse `json:"defaults"`
	Streamlined StreamlinedResponse        `json:"streamlined"`
}

type VenueResponse struct {
	Vendor string `json:"vendor"`
	Label  string `json:"label"`
	Fee    int64  `json:"fee"`
}

type GuestsResponse struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

type CategoryResponse struct {
	Category     string           `json:"category"`
	Vendor       string           `json:"vendor"`
	DefaultValue string           `json:"defaultValue"`
	Options      []OptionResponse `json:"options"`
}

type OptionResponse struct {
	Value        string  `json:"value"`
	Title        string  `json:"title"`
	Subtitle     string  `json:"subtitle"`
	PricingMode  string  `json:"pricingMode"`
	DefaultPrice float64 `json:"defaultPrice"`
	Vendor       string  `json:"vendor"`
}

type StreamlinedResponse struct {
	Name        string                  `json:"name"`
	Headline    string                  `json:"headline"`
	Description string                  `json:"description"`
	Inclusions  []string                `json:"inclusions"`
	Estimate    models.EstimateResponse `json:"estimate"`
}

// FromDomain собирает ответ из каталога и предзаполненного плана
func FromDomain(catalog domain.Catalog, defaults domain.CustomSelections, streamlined domain.Estimate) *CatalogResponse {
	resp := &CatalogResponse{
		Venue: VenueResponse{
			Vendor: catalog.VenueVendor,
			Label:  catalog.VenueLabel,
			Fee:    catalog.VenueFee,
		},
		DepositRate: catalog.DepositRate,
		Guests: GuestsResponse{
			Min:     catalog.MinGuests,
			Max:     catalog.MaxGuests,
			Default: catalog.DefaultGuestCount,
		},
		Categories: make([]CategoryResponse, 0, len(catalog.Categories)),
		Defaults:   models.FromDomainSelections(&defaults),
		Streamlined: StreamlinedResponse{
			Name:        catalog.Streamlined.Name,
			Headline:    catalog.Streamlined.Headline,
			Description: catalog.Streamlined.Description,
			Inclusions:  catalog.Streamlined.Inclusions,
			Estimate:    models.FromDomainEstimate(streamlined),
		},
	}

	for i := range catalog.Categories {
		c := &catalog.Categories[i]
		category := CategoryResponse{
			Category:     string(c.Category),
			Vendor:       c.Vendor,
			DefaultValue: c.DefaultValue,
			Options:      make([]OptionResponse, len(c.Options)),
		}
		for j, opt := range c.Options {
			category.Options[j] = OptionResponse{
				Value:        opt.Value,
				Title:        opt.Title,
				Subtitle:     opt.Subtitle,
				PricingMode:  string(opt.PricingMode),
				DefaultPrice: opt.DefaultPrice,
				Vendor:       c.VendorFor(opt),
			}
		}
		resp.Categories = append(resp.Categories, category)
	}

	return resp
}
