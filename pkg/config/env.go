package config

// EnvPrefix is empty because every field carries its full variable name.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

const (
	EnvAppEnv   = "SALESDASH_APP_ENV"
	EnvPort     = "SALESDASH_APP_PORT"
	EnvLogLevel = "SALESDASH_LOG_LEVEL"

	EnvDBDSN          = "SALESDASH_DB_DSN"
	EnvDBHost         = "SALESDASH_DB_HOST"
	EnvDBUser         = "SALESDASH_DB_USER"
	EnvDBName         = "SALESDASH_DB_NAME"
	EnvDBMaxOpenConns = "SALESDASH_DB_MAX_OPEN_CONNS"

	EnvRedisURL = "SALESDASH_REDIS_URL"

	EnvHTTPRequestTimeout = "SALESDASH_HTTP_REQUEST_TIMEOUT"
	EnvHTTPCORSOrigins    = "SALESDASH_HTTP_CORS_ORIGINS"

	EnvReportsTimezone     = "SALESDASH_REPORTS_TIMEZONE"
	EnvReportsSummaryTTL   = "SALESDASH_REPORTS_SUMMARY_TTL"
	EnvReportsCacheBackend = "SALESDASH_REPORTS_CACHE_BACKEND"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
