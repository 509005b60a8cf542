// Package config defines service configuration and its loading order.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MongoURI and MongoDatabase locate the document store.
	MongoURI      string `koanf:"mongo_uri"`
	MongoDatabase string `koanf:"mongo_database"`

	// RedisAddr locates the cache.
	RedisAddr string `koanf:"redis_addr"`

	// JWTSecret signs API tokens.
	JWTSecret string `koanf:"jwt_secret"`
}

// New returns the defaults the file and environment layers override.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		Addr:          ":8080",
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "maturity",
		RedisAddr:     "localhost:6379",
		JWTSecret:     "dev-secret-change-me",
	}
}
