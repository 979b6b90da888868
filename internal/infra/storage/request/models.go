package request

import (
	"encoding/json"

	"github.com/m04kA/TD-WeddingService/internal/domain"
)

// selectionsColumn формат JSONB-колонки selections
type selectionsColumn struct {
	GuestCount int `json:"guestCount"`

	FoodStyle   string `json:"foodStyle"`
	Beverage    string `json:"beverage"`
	Cake        string `json:"cake"`
	Floral      string `json:"floral"`
	Coordinator string `json:"coordinator"`
	Officiant   string `json:"officiant"`

	FoodPrice        float64 `json:"foodPrice"`
	BeveragePrice    float64 `json:"beveragePrice"`
	CakePrice        float64 `json:"cakePrice"`
	FloralPrice      float64 `json:"floralPrice"`
	CoordinatorPrice float64 `json:"coordinatorPrice"`
	OfficiantPrice   float64 `json:"officiantPrice"`

	Notes string `json:"notes,omitempty"`
}

// lineItemColumn элемент JSONB-колонки line_items
type lineItemColumn struct {
	Vendor string `json:"vendor"`
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

func encodeSelections(sel *domain.CustomSelections) ([]byte, error) {
	if sel == nil {
		return nil, nil
	}
	return json.Marshal(selectionsColumn{
		GuestCount:       sel.GuestCount,
		FoodStyle:        sel.FoodStyle,
		Beverage:         sel.Beverage,
		Cake:             sel.Cake,
		Floral:           sel.Floral,
		Coordinator:      sel.Coordinator,
		Officiant:        sel.Officiant,
		FoodPrice:        sel.FoodPrice,
		BeveragePrice:    sel.BeveragePrice,
		CakePrice:        sel.CakePrice,
		FloralPrice:      sel.FloralPrice,
		CoordinatorPrice: sel.CoordinatorPrice,
		OfficiantPrice:   sel.OfficiantPrice,
		Notes:            sel.Notes,
	})
}

func decodeSelections(raw []byte) (*domain.CustomSelections, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var col selectionsColumn
	if err := json.Unmarshal(raw, &col); err != nil {
		return nil, err
	}

	return &domain.CustomSelections{
		GuestCount:       col.GuestCount,
		FoodStyle:        col.FoodStyle,
		Beverage:         col.Beverage,
		Cake:             col.Cake,
		Floral:           col.Floral,
		Coordinator:      col.Coordinator,
		Officiant:        col.Officiant,
		FoodPrice:        col.FoodPrice,
		BeveragePrice:    col.BeveragePrice,
		CakePrice:        col.CakePrice,
		FloralPrice:      col.FloralPrice,
		CoordinatorPrice: col.CoordinatorPrice,
		OfficiantPrice:   col.OfficiantPrice,
		Notes:            col.Notes,
	}, nil
}

func encodeLineItems(items []domain.EstimateLineItem) ([]byte, error) {
	cols := make([]lineItemColumn, len(items))
	for i, item := range items {
		cols[i] = lineItemColumn{Vendor: item.Vendor, Label: item.Label, Amount: item.Amount}
	}
	return json.Marshal(cols)
}

func decodeLineItems(raw []byte) ([]domain.EstimateLineItem, error) {
	var cols []lineItemColumn
	if err := json.Unmarshal(raw, &cols); err != nil {
		return nil, err
	}

	items := make([]domain.EstimateLineItem, len(cols))
	for i, col := range cols {
		items[i] = domain.EstimateLineItem{Vendor: col.Vendor, Label: col.Label, Amount: col.Amount}
	}
	return items, nil
}
