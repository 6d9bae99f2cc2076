// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/caarlos0/env/v11 for parsing and github.com/joho/godotenv
// for .env files. Nothing is cached and the process environment is never
// modified: file values only fill variables the environment leaves unset.
//
// # Usage
//
//	type Config struct {
//		Schemas  string `env:"SCHEMAS,required"`
//		Addr     string `env:"ADDR" envDefault:":8080"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("FORMCHECK_")); err != nil {
//		log.Fatalf("loading config: %v", err)
//	}
//
// Without WithEnvFiles, a .env file in the working directory is read when it
// exists. Listed files must exist.
//
// # Error Handling
//
//   - ErrParsingConfig: variables could not be parsed into the struct.
//   - ErrLoadingEnvFile: a .env file could not be read.
//   - ErrNilPointer: nil pointer passed to Load or MustLoad.
package config
