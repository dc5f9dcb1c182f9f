package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	BackendPostgres = "postgres"
	BackendFixture  = "fixture"
)

var ErrMissingDBCredentials = errors.New("DB_USER, DB_PASSWORD and DB_NAME are required for the postgres backend")

type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	DB        DBConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Booking   BookingConfig
	Analytics AnalyticsConfig
	Fixture   FixtureConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type BackendConfig struct {
	Mode string `envconfig:"BACKEND_MODE" default:"postgres"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER"`
	Password    string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"Asia/Jakarta"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

// Address empty means session state stays in process memory.
type RedisConfig struct {
	Address  string `envconfig:"REDIS_ADDRESS"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	PoolSize int    `envconfig:"REDIS_POOL_SIZE" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Jakarta"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN"`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type BookingConfig struct {
	TimeZone        string `envconfig:"BOOKING_TIMEZONE" default:"Asia/Jakarta"`
	RejectConflicts bool   `envconfig:"BOOKING_REJECT_CONFLICTS" default:"false"`
	FirstSlotHour   int    `envconfig:"BOOKING_FIRST_SLOT_HOUR" default:"6"`
	LastSlotHour    int    `envconfig:"BOOKING_LAST_SLOT_HOUR" default:"22"`
	BookableDays    int    `envconfig:"BOOKING_BOOKABLE_DAYS" default:"30"`
}

type AnalyticsConfig struct {
	AssumedRoomCount int `envconfig:"ANALYTICS_ASSUMED_ROOM_COUNT" default:"2"`
	HoursPerDay      int `envconfig:"ANALYTICS_HOURS_PER_DAY" default:"8"`
	DaysPerPeriod    int `envconfig:"ANALYTICS_DAYS_PER_PERIOD" default:"30"`
	TrailingMonths   int `envconfig:"ANALYTICS_TRAILING_MONTHS" default:"6"`
}

type FixtureConfig struct {
	SeedFile      string `envconfig:"FIXTURE_SEED_FILE"`
	AdminPassword string `envconfig:"FIXTURE_ADMIN_PASSWORD" default:"demo-password"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *DBConfig) Validate() error {
	if c.User == "" || c.Password == "" || c.DBName == "" {
		return ErrMissingDBCredentials
	}
	return nil
}

func (c *BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}

	switch cfg.Backend.Mode {
	case BackendPostgres:
		if err := cfg.DB.Validate(); err != nil {
			return Config{}, err
		}
	case BackendFixture:
	default:
		return Config{}, fmt.Errorf("unknown BACKEND_MODE %q", cfg.Backend.Mode)
	}

	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Backend: BackendConfig{
			Mode: BackendFixture,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Jakarta",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Jakarta",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-e2e-tests",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Booking: BookingConfig{
			TimeZone:      "Asia/Jakarta",
			FirstSlotHour: 6,
			LastSlotHour:  22,
			BookableDays:  30,
		},
		Analytics: AnalyticsConfig{
			AssumedRoomCount: 2,
			HoursPerDay:      8,
			DaysPerPeriod:    30,
			TrailingMonths:   6,
		},
		Fixture: FixtureConfig{
			AdminPassword: "demo-password",
		},
	}
}
