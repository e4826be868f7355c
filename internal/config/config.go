package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/calypso-charters/CharterBookingService/internal/domain"
	"github.com/calypso-charters/CharterBookingService/pkg/types"
)

// Config полная конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	Pace     PaceConfig     `toml:"pace"`

	Slots        []SlotConfig        `toml:"slots"`
	Products     []ProductConfig     `toml:"products"`
	PricingRules []PricingRuleConfig `toml:"pricing_rules"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	AdminToken      string `toml:"admin_token"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// BookingConfig политика бронирования
type BookingConfig struct {
	// Время жизни холда в минутах (по умолчанию 15)
	HoldMinutes int `toml:"hold_minutes"`

	// Операционная таймзона судна; используется и для нарезки по дням,
	// и для превращения слотов каталога в конкретные интервалы
	Timezone string `toml:"timezone"`

	// Фоновая зачистка давно истёкших холдов (гигиена хранилища).
	// Корректность от неё не зависит - истёкший холд перестаёт
	// блокировать слоты при чтении и без зачистки.
	SweepEnabled         bool `toml:"sweep_enabled"`
	SweepIntervalSeconds int  `toml:"sweep_interval_seconds"`
}

// HoldDuration возвращает TTL холда как time.Duration
func (b BookingConfig) HoldDuration() time.Duration {
	return time.Duration(b.HoldMinutes) * time.Minute
}

// SweepInterval возвращает период зачистки как time.Duration
func (b BookingConfig) SweepInterval() time.Duration {
	return time.Duration(b.SweepIntervalSeconds) * time.Second
}

// PaceConfig настройки партнёрского фида занятости (шаттлы Pace)
type PaceConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Token   string `toml:"token"`
	Timeout int    `toml:"timeout"`
}

// SlotConfig описание слота каталога
type SlotConfig struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
	From  string `toml:"from"` // HH:MM
	To    string `toml:"to"`   // HH:MM
}

// ProductConfig описание чартерного продукта
type ProductConfig struct {
	Slug           string   `toml:"slug"`
	Title          string   `toml:"title"`
	Slots          []string `toml:"slots"`
	BasePriceCents int64    `toml:"base_price_cents"`
	Currency       string   `toml:"currency"`
	IncludedGuests int      `toml:"included_guests"`
	MaxGuests      int      `toml:"max_guests"`
	Active         bool     `toml:"active"`
}

// PricingRuleConfig описание правила ценообразования
type PricingRuleConfig struct {
	Code           string   `toml:"code"`
	Label          string   `toml:"label"`
	AmountCents    int64    `toml:"amount_cents"`
	Threshold      int      `toml:"threshold"`
	MaxValue       int      `toml:"max_value"`
	AppliesToSlots []string `toml:"applies_to_slots"`
	Active         bool     `toml:"active"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "charter-booking-service"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}

	if c.Booking.HoldMinutes == 0 {
		c.Booking.HoldMinutes = domain.DefaultHoldMinutes
	}
	if c.Booking.Timezone == "" {
		c.Booking.Timezone = domain.DefaultOperatingTimezone
	}
	if c.Booking.SweepIntervalSeconds == 0 {
		c.Booking.SweepIntervalSeconds = 300
	}

	if c.Pace.Timeout == 0 {
		c.Pace.Timeout = 5
	}

	// Каталог по умолчанию: расписание судна, как у сайта
	if len(c.Slots) == 0 {
		c.Slots = []SlotConfig{
			{ID: "DAY", Label: "Day Charter", From: "10:00", To: "17:00"},
			{ID: "HALF_AM", Label: "Half Day (AM)", From: "10:00", To: "13:00"},
			{ID: "HALF_PM", Label: "Half Day (PM)", From: "14:00", To: "17:00"},
			{ID: "SUNSET", Label: "Sunset Charter", From: "16:30", To: "18:30"},
		}
	}
	if len(c.Products) == 0 {
		c.Products = []ProductConfig{
			{Slug: "day", Title: "Day Charter", Slots: []string{"DAY"}, BasePriceCents: 120000, Currency: domain.DefaultCurrency, IncludedGuests: domain.DefaultIncludedGuests, MaxGuests: domain.DefaultMaxGuests, Active: true},
			{Slug: "half-day", Title: "Half Day Charter", Slots: []string{"HALF_AM", "HALF_PM"}, BasePriceCents: 70000, Currency: domain.DefaultCurrency, IncludedGuests: domain.DefaultIncludedGuests, MaxGuests: domain.DefaultMaxGuests, Active: true},
			{Slug: "sunset", Title: "Sunset Charter", Slots: []string{"SUNSET"}, BasePriceCents: 50000, Currency: domain.DefaultCurrency, IncludedGuests: domain.DefaultIncludedGuests, MaxGuests: domain.DefaultMaxGuests, Active: true},
			{Slug: "restaurant-shuttle", Title: "Restaurant Shuttle", Slots: nil, BasePriceCents: 0, Currency: domain.DefaultCurrency, Active: true},
		}
	}
	if len(c.PricingRules) == 0 {
		c.PricingRules = []PricingRuleConfig{
			{Code: domain.RuleExtraGuest, Label: "Extra guests", AmountCents: 10000, Threshold: 6, MaxValue: 8, Active: true},
			{Code: domain.RuleNobuFuel, Label: "Nobu fuel surcharge", AmountCents: 15000, AppliesToSlots: []string{"DAY"}, Active: true},
			{Code: domain.RuleCateringPerHead, Label: "Onboard catering", AmountCents: 4500, AppliesToSlots: []string{"DAY"}, Active: true},
		}
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return errors.New("config: database.host is required")
	}
	if c.Database.User == "" {
		return errors.New("config: database.user is required")
	}
	if c.Database.DBName == "" {
		return errors.New("config: database.dbname is required")
	}
	if c.Server.AdminToken == "" {
		return errors.New("config: server.admin_token is required")
	}
	if c.Booking.HoldMinutes < 0 {
		return errors.New("config: booking.hold_minutes must be positive")
	}
	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		return fmt.Errorf("config: invalid booking.timezone %q: %w", c.Booking.Timezone, err)
	}
	if c.Pace.Enabled && c.Pace.URL == "" {
		return errors.New("config: pace.url is required when pace.enabled = true")
	}
	return nil
}

// BuildCatalog собирает доменный каталог из конфигурации
func (c *Config) BuildCatalog() (*domain.Catalog, error) {
	loc, err := time.LoadLocation(c.Booking.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: load timezone: %w", err)
	}

	slots := make([]domain.SlotDefinition, 0, len(c.Slots))
	for _, s := range c.Slots {
		from, err := types.ParseTimeOfDay(s.From)
		if err != nil {
			return nil, fmt.Errorf("config: slot %s: %w", s.ID, err)
		}
		to, err := types.ParseTimeOfDay(s.To)
		if err != nil {
			return nil, fmt.Errorf("config: slot %s: %w", s.ID, err)
		}
		slots = append(slots, domain.SlotDefinition{
			ID:        domain.SlotID(s.ID),
			Label:     s.Label,
			DailyFrom: from,
			DailyTo:   to,
		})
	}

	products := make([]domain.CharterProduct, 0, len(c.Products))
	for _, p := range c.Products {
		slotIDs := make([]domain.SlotID, 0, len(p.Slots))
		for _, id := range p.Slots {
			slotIDs = append(slotIDs, domain.SlotID(id))
		}
		currency := p.Currency
		if currency == "" {
			currency = domain.DefaultCurrency
		}
		included := p.IncludedGuests
		if included == 0 {
			included = domain.DefaultIncludedGuests
		}
		maxGuests := p.MaxGuests
		if maxGuests == 0 {
			maxGuests = domain.DefaultMaxGuests
		}
		products = append(products, domain.CharterProduct{
			Slug:           p.Slug,
			Title:          p.Title,
			Slots:          slotIDs,
			BasePriceCents: p.BasePriceCents,
			Currency:       currency,
			IncludedGuests: included,
			MaxGuests:      maxGuests,
			Active:         p.Active,
		})
	}

	rules := make([]domain.PricingRule, 0, len(c.PricingRules))
	for _, r := range c.PricingRules {
		applies := make([]domain.SlotID, 0, len(r.AppliesToSlots))
		for _, id := range r.AppliesToSlots {
			applies = append(applies, domain.SlotID(id))
		}
		rules = append(rules, domain.PricingRule{
			Code:           r.Code,
			Label:          r.Label,
			AmountCents:    r.AmountCents,
			Threshold:      r.Threshold,
			MaxValue:       r.MaxValue,
			AppliesToSlots: applies,
			Active:         r.Active,
		})
	}

	return domain.NewCatalog(loc, slots, products, rules)
}
