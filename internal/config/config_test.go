package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TD-WeddingService/internal/domain"
)

const testConfig = `
[server]
http_port = 9090

[database]
host = "localhost"
port = 5432
user = "wedding"
password = "from-file"
dbname = "wedding"

[logs]
level = "debug"

[admin]
emails = ["Owner@TinyDiner.com"]

[calendar]
timezone = "UTC"
weekdays = ["thu", "Friday", "sat"]
booked = ["2025-01-18"]
hold = ["2025-02-08"]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "config.toml", testConfig)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, domain.DefaultDepositRate, cfg.Pricing.DepositRate)
	assert.Equal(t, 5, cfg.Notifications.Timeout)
	assert.False(t, cfg.Firebase.Enabled())
	assert.Equal(t,
		"host=localhost port=5432 user=wedding password=from-file dbname=wedding sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "config.toml", testConfig)
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("HTTP_PORT", "7000")
	t.Setenv("FIREBASE_CREDENTIALS_FILE", "/run/secrets/firebase.json")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, 7000, cfg.Server.HTTPPort)
	assert.True(t, cfg.Firebase.Enabled())
}

const badWeekdayConfig = `
[database]
host = "localhost"
dbname = "wedding"

[calendar]
timezone = "UTC"
weekdays = ["someday"]
`

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "missing host", content: "[database]\ndbname = \"x\"\n"},
		{name: "bad weekday", content: badWeekdayConfig},
		{name: "bad port env", content: testConfig, env: map[string]string{"HTTP_PORT": "abc"}},
		{name: "bad deposit rate", content: testConfig + "\n[pricing]\ndeposit_rate = 1.5\n"},
		{name: "bad toml", content: "[server\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeFile(t, "config.toml", tt.content)

			_, err := Load(path)

			assert.Error(t, err)
		})
	}
}

func TestCalendarConfig_ToDomain(t *testing.T) {
	cfg := CalendarConfig{
		Timezone: "UTC",
		Weekdays: []string{"Thursday", "fri", "SAT"},
		Booked:   []string{"2025-01-18"},
		Hold:     []string{"2025-02-08"},
	}

	cal, err := cfg.ToDomain()

	require.NoError(t, err)
	assert.Equal(t, time.UTC, cal.Location)
	assert.Len(t, cal.AllowedWeekdays, 3)
	assert.Contains(t, cal.AllowedWeekdays, time.Friday)
	assert.Contains(t, cal.Booked, "2025-01-18")
	assert.Contains(t, cal.Hold, "2025-02-08")

	cfg.Booked = []string{"18.01.2025"}
	_, err = cfg.ToDomain()
	assert.Error(t, err)
}

func TestAdminConfig_IsAdmin(t *testing.T) {
	cfg := AdminConfig{Emails: []string{"Owner@TinyDiner.com", " events@tinydiner.com "}}

	assert.True(t, cfg.IsAdmin("owner@tinydiner.com"))
	assert.True(t, cfg.IsAdmin("EVENTS@tinydiner.com"))
	assert.False(t, cfg.IsAdmin("guest@example.com"))
	assert.False(t, cfg.IsAdmin(""))
}

func TestConfig_AdminAuthMode(t *testing.T) {
	t.Run("no firebase and no dev mode", func(t *testing.T) {
		cfg, err := Load(writeFile(t, "config.toml", testConfig))
		require.NoError(t, err)

		mode, err := cfg.AdminAuthMode()

		assert.ErrorIs(t, err, ErrAdminAuthNotConfigured)
		assert.Empty(t, mode)
	})

	t.Run("dev mode enabled explicitly", func(t *testing.T) {
		content := strings.Replace(testConfig,
			`emails = ["Owner@TinyDiner.com"]`,
			"emails = [\"Owner@TinyDiner.com\"]\ndev_mode = true", 1)
		cfg, err := Load(writeFile(t, "config.toml", content))
		require.NoError(t, err)
		require.True(t, cfg.Admin.DevMode)

		mode, err := cfg.AdminAuthMode()

		require.NoError(t, err)
		assert.Equal(t, AdminAuthHeader, mode)
	})

	t.Run("firebase wins over dev mode", func(t *testing.T) {
		cfg := &Config{
			Firebase: FirebaseConfig{CredentialsFile: "/run/secrets/firebase.json"},
			Admin:    AdminConfig{DevMode: true},
		}

		mode, err := cfg.AdminAuthMode()

		require.NoError(t, err)
		assert.Equal(t, AdminAuthFirebase, mode)
	})
}

func TestPricingConfig_LoadCatalog(t *testing.T) {
	t.Run("builtin", func(t *testing.T) {
		catalog, err := PricingConfig{DepositRate: 0.3}.LoadCatalog()

		require.NoError(t, err)
		assert.Equal(t, 0.3, catalog.DepositRate)
		assert.Equal(t, int64(2600), catalog.VenueFee)
		assert.Len(t, catalog.Categories, len(domain.Categories))
		assert.Equal(t, domain.DefaultMaxPrice, catalog.MaxPrice)
	})

	t.Run("max price from file", func(t *testing.T) {
		path := writeFile(t, "catalog.toml", "max_price = 50000\n")

		catalog, err := PricingConfig{CatalogFile: path}.LoadCatalog()

		require.NoError(t, err)
		assert.Equal(t, 50000.0, catalog.MaxPrice)
	})

	t.Run("file overrides", func(t *testing.T) {
		path := writeFile(t, "catalog.toml", `
[venue]
fee = 3000

[streamlined]
price = 4500

[[categories]]
category = "cake"
vendor = "Sweet Spot"
default_value = "tiered"

  [[categories.options]]
  value = "tiered"
  title = "Tiered cake"
  pricing_mode = "flat"
  default_price = 520

  [[categories.options]]
  value = "bring"
  title = "Couple-provided desserts"
  pricing_mode = "flat"
  default_price = 150
  vendor_override = "Tiny Diner Venue Support"
`)

		catalog, err := PricingConfig{CatalogFile: path}.LoadCatalog()

		require.NoError(t, err)
		assert.Equal(t, int64(3000), catalog.VenueFee)
		assert.Equal(t, "Tiny Diner Venue & Staffing", catalog.VenueVendor)
		assert.Equal(t, int64(4500), catalog.Streamlined.Price)

		cake, ok := catalog.Category(domain.CategoryCake)
		require.True(t, ok)
		assert.Equal(t, "Sweet Spot", cake.Vendor)
		require.Len(t, cake.Options, 2)
		assert.Equal(t, "Tiny Diner Venue Support", cake.VendorFor(cake.Options[1]))

		food, ok := catalog.Category(domain.CategoryFood)
		require.True(t, ok)
		assert.Equal(t, "buffet", food.DefaultValue)
	})

	t.Run("invalid pricing mode", func(t *testing.T) {
		path := writeFile(t, "catalog.toml", `
[[categories]]
category = "food"

  [[categories.options]]
  value = "buffet"
  pricing_mode = "perTable"
  default_price = 10
`)

		_, err := PricingConfig{CatalogFile: path}.LoadCatalog()

		assert.Error(t, err)
	})

	t.Run("limits", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
		}{
			{name: "max price above limit", content: "max_price = 1e12\n"},
			{name: "guests max above limit", content: "[guests]\nmax = 20000\n"},
			{name: "venue fee above limit", content: "[venue]\nfee = 9000000000000\n"},
			{name: "streamlined price above limit", content: "[streamlined]\nprice = 9000000000000\n"},
			{name: "default price above max price", content: `
max_price = 100

[[categories]]
category = "food"

  [[categories.options]]
  value = "buffet"
  pricing_mode = "perGuest"
  default_price = 500
`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				path := writeFile(t, "catalog.toml", tt.content)

				_, err := PricingConfig{CatalogFile: path}.LoadCatalog()

				assert.Error(t, err)
			})
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		path := writeFile(t, "catalog.toml", `
[[categories]]
category = "music"

  [[categories.options]]
  value = "dj"
  pricing_mode = "flat"
  default_price = 800
`)

		_, err := PricingConfig{CatalogFile: path}.LoadCatalog()

		assert.Error(t, err)
	})
}
