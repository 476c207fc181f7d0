package config

const (
	defaultServerPort = 8080

	defaultMaxOpenConns     = 10
	defaultMaxIdleConns     = 5
	defaultRetryMaxAttempts = 5
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultBcryptCost = 12
	defaultRateBurst  = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",

		"log.level":  "info",
		"log.format": "json",

		"database.dsn":                            "",
		"database.max_open_conns":                 defaultMaxOpenConns,
		"database.max_idle_conns":                 defaultMaxIdleConns,
		"database.conn_max_lifetime":              "30m",
		"database.slow_query_threshold":           "200ms",
		"database.migrate_on_start":               false,
		"database.connect_retry.max_attempts":     defaultRetryMaxAttempts,
		"database.connect_retry.initial_interval": "500ms",
		"database.connect_retry.max_interval":     "10s",
		"database.connect_retry.multiplier":       defaultRetryMultiplier,

		"redis.enabled":                         false,
		"redis.addr":                            "localhost:6379",
		"redis.password":                        "",
		"redis.db":                              0,
		"redis.dial_timeout":                    "2s",
		"redis.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"redis.circuit_breaker.timeout":         "30s",
		"redis.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"auth.jwt_secret":   "",
		"auth.issuer":       "watchstore",
		"auth.token_ttl":    "1h",
		"auth.bcrypt_cost":  defaultBcryptCost,
		"auth.admin_emails": []string{},

		"rate_limit.requests_per_second": 5.0,
		"rate_limit.burst":               defaultRateBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "watchstore-service",
	}
}
