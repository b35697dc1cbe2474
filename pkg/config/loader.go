package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry is one parsed configuration; err is kept only until the entry is evicted.
type entry struct {
	once  sync.Once
	value any
	err   error
}

type cacheKey struct {
	typ    reflect.Type
	prefix string
}

var (
	cache          sync.Map // cacheKey -> *entry
	dotenvLoadOnce sync.Once
)

// Option tunes how a struct is read from the environment.
type Option func(*env.Options)

// WithPrefix reads every variable of the struct under prefix, so
// `env:"ADDR"` with prefix "ADMIN_" reads ADMIN_ADDR. Each prefix is cached
// separately.
func WithPrefix(prefix string) Option {
	return func(o *env.Options) { o.Prefix = prefix }
}

// LoadEnv loads .env files into the process environment, defaulting to ./.env.
// Later files win, and file values win over variables already set.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	if err := godotenv.Overload(paths...); err != nil {
		return fmt.Errorf("load env files %v: %w", paths, err)
	}
	return nil
}

// MustLoadEnv is LoadEnv that panics.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Load fills v from the environment. The first successful parse of a type is
// cached and copied into v on every later call; a failed parse is retried.
// An optional ./.env is read once beforehand without overriding the environment.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvLoadOnce.Do(func() { _ = godotenv.Load() })

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}
	key := cacheKey{typ: reflect.TypeFor[T](), prefix: o.Prefix}

	actual, _ := cache.LoadOrStore(key, new(entry))
	e := actual.(*entry)
	e.once.Do(func() {
		var parsed T
		if err := env.ParseWithOptions(&parsed, o); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = parsed
	})
	if e.err != nil {
		cache.CompareAndDelete(key, e)
		return e.err
	}

	*v = e.value.(T)
	return nil
}

// MustLoad is Load that panics; for settings the process cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Reload drops the cached T and parses the environment again.
func Reload[T any](v *T, opts ...Option) error {
	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}
	cache.Delete(cacheKey{typ: reflect.TypeFor[T](), prefix: o.Prefix})
	return Load(v, opts...)
}

// ResetCache forgets every parsed configuration. Tests use it between cases.
func ResetCache() {
	cache.Range(func(k, _ any) bool {
		cache.Delete(k)
		return true
	})
}
