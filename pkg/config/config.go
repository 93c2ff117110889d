package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	HTTP         HTTPConfig
	Reports      ReportsConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Reports.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SALESDASH_APP_ENV" required:"true"`
	Port         string `envconfig:"SALESDASH_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SALESDASH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SALESDASH_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"SALESDASH_DB_DSN"`

	LegacyHost     string `envconfig:"SALESDASH_DB_HOST"`
	LegacyPort     int    `envconfig:"SALESDASH_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SALESDASH_DB_USER"`
	LegacyPassword string `envconfig:"SALESDASH_DB_PASSWORD"`
	LegacyName     string `envconfig:"SALESDASH_DB_NAME"`
	LegacySSLMode  string `envconfig:"SALESDASH_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SALESDASH_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"SALESDASH_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"SALESDASH_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SALESDASH_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// RedisConfig is optional; an empty URL and address disables Redis entirely.
type RedisConfig struct {
	URL          string        `envconfig:"SALESDASH_REDIS_URL"`
	Address      string        `envconfig:"SALESDASH_REDIS_ADDR"`
	Password     string        `envconfig:"SALESDASH_REDIS_PASSWORD"`
	DB           int           `envconfig:"SALESDASH_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SALESDASH_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SALESDASH_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SALESDASH_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SALESDASH_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"SALESDASH_REDIS_WRITE_TIMEOUT" default:"3s"`
}

// Enabled reports whether a Redis endpoint has been configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type HTTPConfig struct {
	RequestTimeout    time.Duration `envconfig:"SALESDASH_HTTP_REQUEST_TIMEOUT" default:"60s"`
	ReadHeaderTimeout time.Duration `envconfig:"SALESDASH_HTTP_READ_HEADER_TIMEOUT" default:"10s"`
	IdleTimeout       time.Duration `envconfig:"SALESDASH_HTTP_IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout   time.Duration `envconfig:"SALESDASH_HTTP_SHUTDOWN_TIMEOUT" default:"15s"`
	CORSOrigins       []string      `envconfig:"SALESDASH_HTTP_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

type ReportsConfig struct {
	Timezone     string        `envconfig:"SALESDASH_REPORTS_TIMEZONE" default:"UTC"`
	SummaryTTL   time.Duration `envconfig:"SALESDASH_REPORTS_SUMMARY_TTL" default:"60s"`
	CacheBackend string        `envconfig:"SALESDASH_REPORTS_CACHE_BACKEND" default:"memory"`
}

// Location resolves the configured reporting time zone used to decide "today".
func (r ReportsConfig) Location() (*time.Location, error) {
	name := strings.TrimSpace(r.Timezone)
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("loading %s %q: %w", EnvReportsTimezone, name, err)
	}
	return loc, nil
}

func (r ReportsConfig) validate() error {
	if _, err := r.Location(); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(r.CacheBackend)) {
	case "", CacheBackendMemory, CacheBackendRedis:
	default:
		return fmt.Errorf("%s must be %q or %q", EnvReportsCacheBackend, CacheBackendMemory, CacheBackendRedis)
	}
	if r.SummaryTTL < 0 {
		return fmt.Errorf("%s must not be negative", EnvReportsSummaryTTL)
	}
	return nil
}

// Backend returns the normalized cache backend name.
func (r ReportsConfig) Backend() string {
	backend := strings.ToLower(strings.TrimSpace(r.CacheBackend))
	if backend == "" {
		return CacheBackendMemory
	}
	return backend
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SALESDASH_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
