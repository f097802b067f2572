package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Backend modes.
const (
	BackendModeMock = "mock"
	BackendModeLive = "live"
)

// Store drivers.
const (
	StoreDriverFile   = "file"
	StoreDriverSQLite = "sqlite"
	StoreDriverMemory = "memory"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Store   StoreConfig       `yaml:"store"`
	Backend BackendConfig     `yaml:"backend"`
	Auth    AuthConfig        `yaml:"auth"`
	Chat    ChatConfig        `yaml:"chat"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if err := c.Backend.Validate(); err != nil {
		return err
	}
	return c.Auth.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
	MediaDir string     `yaml:"media_dir"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// StoreConfig selects and locates the key-value store backing mock mode.
// Path is a directory for the file driver, a database file for sqlite, and
// ignored for memory.
type StoreConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// Validate validates the store configuration.
func (c *StoreConfig) Validate() error {
	if c.Driver == "" {
		c.Driver = StoreDriverFile
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Driver, validation.Required,
			validation.In(StoreDriverFile, StoreDriverSQLite, StoreDriverMemory)),
	); err != nil {
		return err
	}
	if c.Driver != StoreDriverMemory && c.Path == "" {
		return fmt.Errorf("store: driver %q requires a path", c.Driver)
	}
	return nil
}

// BackendConfig selects mock (local store) or live (remote HTTP) backing.
//
//   - "mock" (default): collections live in the local store, seeded on first
//     read. Works offline.
//   - "live": calls are forwarded to BaseURL, which must be non-empty.
type BackendConfig struct {
	Mode    string `yaml:"mode"`
	BaseURL string `yaml:"base_url"`
}

// Validate validates the backend configuration.
func (c *BackendConfig) Validate() error {
	if c.Mode == "" {
		c.Mode = BackendModeMock
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(BackendModeMock, BackendModeLive)),
	); err != nil {
		return err
	}
	if c.Mode == BackendModeLive && c.BaseURL == "" {
		return fmt.Errorf("backend: mode is %q but base_url is empty", BackendModeLive)
	}
	return nil
}

// Live reports whether calls go to a remote backend.
func (c *BackendConfig) Live() bool {
	return c.Mode == BackendModeLive
}

// AuthConfig holds mock-mode login configuration. AdminPassword comes from
// the environment via config expansion and must never be committed; leaving
// it empty disables login rather than falling back to a default.
type AuthConfig struct {
	AdminPassword string        `yaml:"admin_password"`
	LoginDelay    time.Duration `yaml:"login_delay"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	if c.LoginDelay < 0 {
		return fmt.Errorf("auth: login_delay must not be negative")
	}
	return nil
}

// ChatConfig holds chat assistant configuration.
type ChatConfig struct {
	ThinkDelay time.Duration `yaml:"think_delay"`
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
			MediaDir: "./data/media",
		},
		Store: StoreConfig{
			Driver: StoreDriverFile,
			Path:   "./data/store",
		},
		Backend: BackendConfig{
			Mode: BackendModeMock,
		},
		Auth: AuthConfig{
			LoginDelay: 800 * time.Millisecond,
		},
		Chat: ChatConfig{
			ThinkDelay: 600 * time.Millisecond,
		},
	}
}
