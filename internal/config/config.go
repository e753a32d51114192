package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. The data platform is the only persistent store
// the service talks to; its URL is required but the token is optional so
// the service can come up with a disabled platform client (every dispatch
// then fails with a server error instead of the process refusing to start).
type Config struct {
	Env            string        // application environment (e.g. "dev", "prod")
	Port           string        // HTTP port to listen on
	PlatformURL    string        // base URL of the data platform (Directus-style REST)
	PlatformToken  string        // static bearer token; empty means the platform client is disabled
	RequestTimeout time.Duration // per-call bound on platform requests
	CookieName     string        // name of the identity cookie
	CookieTTL      time.Duration // identity cookie lifetime
	QueueURL       string        // AMQP broker URL for off-day events (empty uses the local default)
	ConsumeEvents  bool          // run the off-day audit-log consumer in-process
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		PlatformURL:    must("DIRECTUS_URL"),
		PlatformToken:  os.Getenv("DIRECTUS_API_KEY"), // optional, see Config doc
		RequestTimeout: envDur("PLATFORM_TIMEOUT", 10*time.Second),
		CookieName:     envStr("SESSION_COOKIE", "currentUser"),
		CookieTTL:      envDur("SESSION_COOKIE_TTL", 30*24*time.Hour),
		QueueURL:       os.Getenv("RABBITMQ_URL"),
		ConsumeEvents:  envBool("OFFDAY_CONSUMER_ENABLED", false),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
