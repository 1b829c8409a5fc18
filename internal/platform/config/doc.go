// Package config provides environment- and flag-based configuration.
//
// Loads an optional dotenv file (godotenv), maps the environment to Config via
// go-simpler/env struct tags, then lets command-line flags (pflag) override it.
package config
