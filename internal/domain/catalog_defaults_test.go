package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_NotRequiredSubtitles(t *testing.T) {
	catalog := DefaultCatalog()

	want := map[Category]string{
		CategoryFood:        "Not required — facility support fee per guest",
		CategoryBeverage:    "Not required — service oversight fee",
		CategoryCake:        "Not required for this celebration",
		CategoryFloral:      "Not required — couple will keep decor simple",
		CategoryCoordinator: "Not required — includes operations lead",
		CategoryOfficiant:   "Not required for this event",
	}

	for c, subtitle := range want {
		options, ok := catalog.Category(c)
		require.True(t, ok, c)

		opt, found := options.Find("notRequired")
		require.True(t, found, c)
		assert.Equal(t, subtitle, opt.Subtitle, c)
	}
}

func TestDefaultCatalog_Limits(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Equal(t, DefaultMaxPrice, catalog.MaxPrice)
	for _, options := range catalog.Categories {
		for _, opt := range options.Options {
			assert.LessOrEqual(t, opt.DefaultPrice, catalog.MaxPrice, opt.Value)
		}
	}
}
