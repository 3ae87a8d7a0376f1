package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type cache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
	envSet bool
}

var global = &cache{values: make(map[reflect.Type]any)}

// LoadEnv loads the given .env files into the process environment.
// Variables already set are not overridden. Without paths the default
// .env file is loaded when it exists. Cached configs are not affected;
// use ForceReload to pick up new values.
func LoadEnv(paths ...string) error {
	global.mu.Lock()
	defer global.mu.Unlock()
	return global.loadEnv(paths...)
}

// MustLoadEnv is like LoadEnv but panics on error.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(err)
	}
}

func (c *cache) loadEnv(paths ...string) error {
	c.envSet = true
	if len(paths) == 0 {
		// the default file is optional
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses the environment into v. Each config type is parsed once
// and served from the cache afterwards. The default .env file is read
// on first use unless LoadEnv ran before.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	global.mu.Lock()
	defer global.mu.Unlock()

	if !global.envSet {
		_ = global.loadEnv()
	}

	if cached, ok := global.values[reflect.TypeFor[T]()]; ok {
		*v = cached.(T)
		return nil
	}
	return parse(global, v)
}

func parse[T any](c *cache, v *T) error {
	var zero T
	*v = zero
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	c.values[reflect.TypeFor[T]()] = *v
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReload drops the cached value of T and parses the environment again.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	global.mu.Lock()
	defer global.mu.Unlock()

	delete(global.values, reflect.TypeFor[T]())
	return parse(global, v)
}

// ResetCache drops every cached config and forgets that .env files were
// loaded. Intended for tests.
func ResetCache() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.values = make(map[reflect.Type]any)
	global.envSet = false
}
