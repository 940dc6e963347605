// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` for optional `.env` files and
// `github.com/caarlos0/env/v11` for parsing the environment into a struct
// described with `env` and `envDefault` tags.
//
// # Usage
//
//	type Config struct {
//	    LHS      int    `env:"EVENTDEMO_LHS" envDefault:"10"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// Pass file names to Load to read specific `.env` files; those files must
// exist. Without file names a `.env` in the working directory is read if it is
// there. Variables already set in the process environment are never
// overwritten by file values.
//
// # Error Handling
//
// Errors can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – the environment could not be parsed into the struct.
//   - `ErrLoadingEnvFile` – a requested `.env` file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`.
package config
