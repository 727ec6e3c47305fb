package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Env            string               `mapstructure:"env"`
	LogLevel       string               `mapstructure:"log_level"`
	HTTP           HTTPConfig           `mapstructure:"http"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Redis          RedisConfig          `mapstructure:"redis"`
	Kafka          KafkaConfig          `mapstructure:"kafka"`
	Weather        WeatherConfig        `mapstructure:"weather"`
	Pricing        PricingConfig        `mapstructure:"pricing"`
	Membership     MembershipConfig     `mapstructure:"membership"`
	Recommendation RecommendationConfig `mapstructure:"recommendation"`
}

type HTTPConfig struct {
	Addr          string `mapstructure:"addr"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (c DatabaseConfig) DSN() string {
	return "host=" + c.Host + " port=" + c.Port + " user=" + c.User +
		" password=" + c.Password + " dbname=" + c.Name + " sslmode=" + c.SSLMode
}

type RedisConfig struct {
	Host      string        `mapstructure:"host"`
	Port      string        `mapstructure:"port"`
	MarkerTTL time.Duration `mapstructure:"marker_ttl"`
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type KafkaConfig struct {
	Broker      string `mapstructure:"broker"`
	OrderTopic  string `mapstructure:"order_topic"`
	ReviewTopic string `mapstructure:"review_topic"`
	GroupID     string `mapstructure:"group_id"`
}

type WeatherConfig struct {
	APIKey   string        `mapstructure:"api_key"`
	City     string        `mapstructure:"city"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type PricingConfig struct {
	ComboRate        decimal.Decimal `mapstructure:"combo_rate"`
	SuperComboRate   decimal.Decimal `mapstructure:"super_combo_rate"`
	MinPriceRatio    decimal.Decimal `mapstructure:"min_price_ratio"`
	MinTotal         decimal.Decimal `mapstructure:"min_total"`
	MaxTotal         decimal.Decimal `mapstructure:"max_total"`
	MinAddressLength int             `mapstructure:"min_address_length"`
	MaxNotesLength   int             `mapstructure:"max_notes_length"`
}

type MembershipConfig struct {
	Silver        decimal.Decimal `mapstructure:"silver"`
	Gold          decimal.Decimal `mapstructure:"gold"`
	Platinum      decimal.Decimal `mapstructure:"platinum"`
	RetryAttempts uint            `mapstructure:"retry_attempts"`
	RetryInterval time.Duration   `mapstructure:"retry_interval"`
}

type RecommendationConfig struct {
	HistoryWindow    int     `mapstructure:"history_window"`
	DecayDays        float64 `mapstructure:"decay_days"`
	TopCategories    int     `mapstructure:"top_categories"`
	FavoritePool     int     `mapstructure:"favorite_pool"`
	DefaultLimit     int     `mapstructure:"default_limit"`
	SmartSourceLimit int     `mapstructure:"smart_source_limit"`
	DiversityPenalty float64 `mapstructure:"diversity_penalty"`
}

var defaults = map[string]any{
	"env":                               "production",
	"log_level":                         "info",
	"http.addr":                         ":8080",
	"http.public_base_url":              "http://localhost:3000",
	"database.host":                     "localhost",
	"database.port":                     "5432",
	"database.name":                     "smartfood",
	"database.user":                     "postgres",
	"database.password":                 "",
	"database.sslmode":                  "disable",
	"redis.host":                        "localhost",
	"redis.port":                        "6379",
	"redis.marker_ttl":                  "720h",
	"kafka.broker":                      "localhost:9092",
	"kafka.order_topic":                 "orders",
	"kafka.review_topic":                "reviews",
	"kafka.group_id":                    "smartfood-aggregator",
	"weather.api_key":                   "",
	"weather.city":                      "Hanoi",
	"weather.base_url":                  "https://api.openweathermap.org/data/2.5",
	"weather.timeout":                   "5s",
	"weather.cache_ttl":                 "10m",
	"pricing.combo_rate":                "0.07",
	"pricing.super_combo_rate":          "0.10",
	"pricing.min_price_ratio":           "0.3",
	"pricing.min_total":                 "10000",
	"pricing.max_total":                 "5000000",
	"pricing.min_address_length":        10,
	"pricing.max_notes_length":          500,
	"membership.silver":                 "2000000",
	"membership.gold":                   "5000000",
	"membership.platinum":               "10000000",
	"membership.retry_attempts":         3,
	"membership.retry_interval":         "50ms",
	"recommendation.history_window":     50,
	"recommendation.decay_days":         30.0,
	"recommendation.top_categories":     5,
	"recommendation.favorite_pool":      20,
	"recommendation.default_limit":      10,
	"recommendation.smart_source_limit": 5,
	"recommendation.diversity_penalty":  10.0,
}

// legacyEnv keeps the bare variable names the docker-compose setup already exports.
var legacyEnv = map[string]string{
	"database.host":     "DB_HOST",
	"database.port":     "DB_PORT",
	"database.name":     "DB_NAME",
	"database.user":     "DB_USER",
	"database.password": "DB_PASSWORD",
	"redis.host":        "REDIS_HOST",
	"redis.port":        "REDIS_PORT",
	"kafka.broker":      "KAFKA_BROKER",
	"weather.api_key":   "WEATHER_API_KEY",
	"env":               "APP_ENV",
}

// Load reads defaults, then the optional config file, then the environment.
// An explicitly named file must exist; the default smartfood.yaml is optional.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix("SMARTFOOD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range legacyEnv {
		prefixed := "SMARTFOOD_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("smartfood")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	decoderConfigOption := viper.DecoderConfigOption(func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			dc.DecodeHook,
			StringToDecimalHookFunc(),
		)
	})
	if err := v.Unmarshal(&cfg, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	switch {
	case !c.Pricing.ComboRate.IsPositive() || c.Pricing.ComboRate.GreaterThanOrEqual(decimal.NewFromInt(1)):
		return fmt.Errorf("pricing.combo_rate must be in (0, 1)")
	case !c.Pricing.SuperComboRate.IsPositive() || c.Pricing.SuperComboRate.GreaterThanOrEqual(decimal.NewFromInt(1)):
		return fmt.Errorf("pricing.super_combo_rate must be in (0, 1)")
	case c.Pricing.MinPriceRatio.IsNegative() || c.Pricing.MinPriceRatio.GreaterThan(decimal.NewFromInt(1)):
		return fmt.Errorf("pricing.min_price_ratio must be in [0, 1]")
	case c.Pricing.MinTotal.GreaterThan(c.Pricing.MaxTotal):
		return fmt.Errorf("pricing.min_total exceeds pricing.max_total")
	case !(c.Membership.Silver.LessThan(c.Membership.Gold) && c.Membership.Gold.LessThan(c.Membership.Platinum)):
		return fmt.Errorf("membership thresholds must increase silver < gold < platinum")
	}
	return nil
}

// StringToDecimalHookFunc decodes strings and numbers into decimal.Decimal.
func StringToDecimalHookFunc() mapstructure.DecodeHookFuncType {
	decimalType := reflect.TypeOf(decimal.Decimal{})
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != decimalType {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return decimal.NewFromString(strings.TrimSpace(v))
		case float64:
			return decimal.NewFromFloat(v), nil
		case float32:
			return decimal.NewFromFloat32(v), nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		}
		return data, nil
	}
}
