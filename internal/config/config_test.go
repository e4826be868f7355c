package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calypso-charters/CharterBookingService/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[server]
admin_token = "secret"

[database]
host = "localhost"
user = "charter"
dbname = "charter_booking"
`

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, domain.DefaultHoldMinutes, cfg.Booking.HoldMinutes)
	assert.Equal(t, domain.DefaultOperatingTimezone, cfg.Booking.Timezone)

	// Каталог по умолчанию: четыре слота и четыре продукта
	assert.Len(t, cfg.Slots, 4)
	assert.Len(t, cfg.Products, 4)
	assert.Len(t, cfg.PricingRules, 3)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("missing database host", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
[server]
admin_token = "secret"

[database]
user = "charter"
dbname = "charter_booking"
`))
		assert.Error(t, err)
	})

	t.Run("missing admin token", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
[database]
host = "localhost"
user = "charter"
dbname = "charter_booking"
`))
		assert.Error(t, err)
	})

	t.Run("bad timezone", func(t *testing.T) {
		_, err := Load(writeConfig(t, minimalConfig+`
[booking]
timezone = "Caribbean/Nowhere"
`))
		assert.Error(t, err)
	})

	t.Run("pace enabled without url", func(t *testing.T) {
		_, err := Load(writeConfig(t, minimalConfig+`
[pace]
enabled = true
`))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "charter",
		Password: "pass",
		DBName:   "charter_booking",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5432 user=charter password=pass dbname=charter_booking sslmode=disable", d.DSN())
}

func TestBuildCatalog_FromDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	catalog, err := cfg.BuildCatalog()
	require.NoError(t, err)

	span, err := catalog.Resolve(mustDate(t), "SUNSET")
	require.NoError(t, err)
	assert.Equal(t, 16, span.Start.Hour())
	assert.Equal(t, 30, span.Start.Minute())
	assert.Equal(t, 18, span.End.Hour())

	slots, err := catalog.SlotsForProduct("half-day")
	require.NoError(t, err)
	assert.Len(t, slots, 2)
}

func TestBuildCatalog_CustomCatalog(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
[[slots]]
id = "DAY"
label = "Day Charter"
from = "09:00"
to = "16:00"

[[products]]
slug = "day"
title = "Day Charter"
slots = ["DAY"]
base_price_cents = 100000
active = true
`))
	require.NoError(t, err)

	catalog, err := cfg.BuildCatalog()
	require.NoError(t, err)

	span, err := catalog.Resolve(mustDate(t), "DAY")
	require.NoError(t, err)
	assert.Equal(t, 9, span.Start.Hour())
	assert.Equal(t, 16, span.End.Hour())
}

func TestBuildCatalog_RejectsBadSlotTime(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
[[slots]]
id = "DAY"
label = "Day Charter"
from = "nope"
to = "16:00"
`))
	require.NoError(t, err)

	_, err = cfg.BuildCatalog()
	assert.Error(t, err)
}

func mustDate(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
}
