// Package config reads typed settings from the environment.
//
// Structs are annotated with github.com/caarlos0/env tags and .env files are
// read with github.com/joho/godotenv. Each struct type is parsed once and
// served from memory afterwards, so settings such as temporal.Config are
// fixed for the life of the process.
//
// # Usage
//
//	if err := config.LoadEnv("deploy/.env"); err != nil {
//	    return err
//	}
//
//	var cfg temporal.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	parser, err := temporal.NewFromConfig(cfg)
//
// The same struct can be read under several prefixes:
//
//	var public, admin httpserver.Config
//	config.Load(&public)                                // HTTP_ADDR
//	config.Load(&admin, config.WithPrefix("ADMIN_"))   // ADMIN_HTTP_ADDR
//
// # Error Handling
//
// ErrParsingConfig wraps every env parse failure, including missing required
// variables. ErrNilPointer is returned for a nil target. MustLoad and
// MustLoadEnv panic instead.
//
// Tests call ResetCache, or Reload for a single type, after changing the
// environment.
package config
