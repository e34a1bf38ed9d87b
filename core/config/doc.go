// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file from the working directory on first use and
// uses the caarlos0/env library for parsing environment variables into struct
// fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/wayfarer/core/config"
//
//	type ServeConfig struct {
//		Table       string `env:"WAYFARER_TABLE,required"`
//		MetricsPath string `env:"METRICS_PATH" envDefault:"/metrics"`
//	}
//
//	func main() {
//		var cfg ServeConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 ServeConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 ServeConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently. Tests that change the environment
// between loads call Reset.
package config
