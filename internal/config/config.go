package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	InputPath        string        `mapstructure:"input_path"`
	OutputPath       string        `mapstructure:"output_path"`
	WorkbookPath     string        `mapstructure:"workbook_path"` // optional .xlsx export
	TopProducts      int           `mapstructure:"top_products"`
	ChartTopProducts int           `mapstructure:"chart_top_products"`
	Months           []string      `mapstructure:"months"`
	Chart            ChartConfig   `mapstructure:"chart"`
	Logging          LoggingConfig `mapstructure:"logging"`
}

// ChartConfig defines the composite figure geometry
type ChartConfig struct {
	WidthInches  float64  `mapstructure:"width_inches"`
	HeightInches float64  `mapstructure:"height_inches"`
	DPI          int      `mapstructure:"dpi"`
	MonthLabels  []string `mapstructure:"month_labels"`
}

// LoggingConfig defines log output
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text or json
}

// EnvPrefix is prepended to environment overrides, e.g. VENTAS_INPUT_PATH
const EnvPrefix = "VENTAS"

// SetDefaults registers the default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input_path", "ventas_electronica.csv")
	v.SetDefault("output_path", "/mnt/user-data/outputs/analisis_ventas.png")
	v.SetDefault("workbook_path", "")
	v.SetDefault("top_products", 10)
	v.SetDefault("chart_top_products", 5)
	v.SetDefault("months", []string{"January", "February", "March"})
	v.SetDefault("chart.width_inches", 16.0)
	v.SetDefault("chart.height_inches", 12.0)
	v.SetDefault("chart.dpi", 300)
	v.SetDefault("chart.month_labels", []string{"Enero", "Febrero", "Marzo"})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// New returns a viper instance with defaults and environment overrides bound.
// A .env file in the working directory is loaded first when present.
func New() (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v, nil
}

// LoadConfig loads configuration from file and environment variables.
// An empty configPath yields the defaults.
func LoadConfig(configPath string) (*Config, error) {
	v, err := New()
	if err != nil {
		return nil, err
	}
	return Load(v, configPath)
}

// Load reads configPath (if set) into v and unmarshals the result
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("toml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks the values the pipeline depends on
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("input_path cannot be empty")
	}
	if c.OutputPath == "" {
		return errors.New("output_path cannot be empty")
	}
	if c.TopProducts <= 0 {
		return fmt.Errorf("top_products must be positive, got %d", c.TopProducts)
	}
	if c.ChartTopProducts <= 0 {
		return fmt.Errorf("chart_top_products must be positive, got %d", c.ChartTopProducts)
	}
	if c.Chart.DPI <= 0 {
		return fmt.Errorf("chart.dpi must be positive, got %d", c.Chart.DPI)
	}
	if c.Chart.WidthInches <= 0 || c.Chart.HeightInches <= 0 {
		return fmt.Errorf("chart size must be positive, got %gx%g", c.Chart.WidthInches, c.Chart.HeightInches)
	}
	if len(c.Months) == 0 {
		return errors.New("months cannot be empty")
	}
	if _, err := c.MonthOrder(); err != nil {
		return err
	}
	if len(c.Months) != len(c.Chart.MonthLabels) {
		return fmt.Errorf("months (%d) and chart.month_labels (%d) must have the same length",
			len(c.Months), len(c.Chart.MonthLabels))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	return nil
}

// MonthOrder resolves the configured English month names, case-insensitively
func (c *Config) MonthOrder() ([]time.Month, error) {
	order := make([]time.Month, 0, len(c.Months))
	for _, name := range c.Months {
		m, ok := parseMonth(name)
		if !ok {
			return nil, fmt.Errorf("unknown month: %q", name)
		}
		order = append(order, m)
	}
	return order, nil
}

func parseMonth(name string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(strings.TrimSpace(name), m.String()) {
			return m, true
		}
	}
	return 0, false
}
