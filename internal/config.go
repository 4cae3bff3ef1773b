package internal

import (
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/globelex/internal/dataset"
	"github.com/starford/globelex/internal/lookup"
	"github.com/starford/globelex/internal/models"
)

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeToken    = "token"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Dataset DatasetConfig     `yaml:"dataset"`
	Lookup  LookupConfig      `yaml:"lookup"`
	Auth    AuthConfig        `yaml:"auth"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Dataset.Validate(); err != nil {
		return err
	}
	if err := c.Lookup.Validate(); err != nil {
		return err
	}
	return c.Auth.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
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

// DatasetConfig describes where the glossary file lives and how to decode it.
type DatasetConfig struct {
	Path       string `yaml:"path"`
	HeaderRows int    `yaml:"header_rows"`
	MinColumns int    `yaml:"min_columns"`
	Delimiter  string `yaml:"delimiter"`
	Encoding   string `yaml:"encoding"`
	Watch      bool   `yaml:"watch"`
}

// Validate validates the dataset configuration.
func (c *DatasetConfig) Validate() error {
	encodings := make([]interface{}, len(dataset.Encodings))
	for i, e := range dataset.Encodings {
		encodings[i] = e
	}
	c.Encoding = strings.ToLower(c.Encoding)
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
		validation.Field(&c.HeaderRows, validation.Min(0)),
		validation.Field(&c.MinColumns, validation.Required, validation.Min(models.MinColumns())),
		validation.Field(&c.Delimiter, validation.Required, validation.RuneLength(1, 1)),
		validation.Field(&c.Encoding, validation.Required, validation.In(encodings...)),
	)
}

// Options converts the configuration into loader options.
func (c *DatasetConfig) Options() dataset.Options {
	return dataset.Options{
		HeaderRows: c.HeaderRows,
		MinColumns: c.MinColumns,
		Delimiter:  []rune(c.Delimiter)[0],
		Encoding:   c.Encoding,
	}
}

// Remote reports whether the dataset is fetched over HTTP.
func (c *DatasetConfig) Remote() bool {
	return strings.HasPrefix(c.Path, "http://") || strings.HasPrefix(c.Path, "https://")
}

// LookupConfig holds the initial selection of a lookup session.
type LookupConfig struct {
	DefaultSource  string `yaml:"default_source"`
	DefaultCompare string `yaml:"default_compare"`
}

// Validate validates the lookup configuration.
func (c *LookupConfig) Validate() error {
	ids := make([]interface{}, 0, models.NumSources)
	for _, s := range models.Sources() {
		ids = append(ids, s.ID())
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.DefaultSource, validation.Required, validation.In(ids...)),
		validation.Field(&c.DefaultCompare, validation.Required, validation.In(ids...)),
	); err != nil {
		return err
	}
	if c.DefaultSource == c.DefaultCompare {
		return fmt.Errorf("lookup: default_source and default_compare are both %q", c.DefaultSource)
	}
	return nil
}

// Sources returns the parsed default sources.
func (c *LookupConfig) Sources() (models.Source, models.Source, error) {
	active, err := models.ParseSource(c.DefaultSource)
	if err != nil {
		return 0, 0, err
	}
	compare, err := models.ParseSource(c.DefaultCompare)
	if err != nil {
		return 0, 0, err
	}
	return active, compare, nil
}

// State returns the selection a new lookup session starts from.
func (c *LookupConfig) State() (lookup.State, error) {
	active, compare, err := c.Sources()
	if err != nil {
		return lookup.State{}, err
	}
	return lookup.NewState(active, compare)
}

// AuthConfig holds authentication configuration.
//
// Mode controls how authentication is enforced:
//   - "disabled" (default): no authentication required, suitable for local dev.
//   - "token": Bearer token authentication; Token must be non-empty.
type AuthConfig struct {
	Mode  string `yaml:"mode"`
	Token string `yaml:"token"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeToken)),
	); err != nil {
		return err
	}
	if c.Mode == AuthModeToken && c.Token == "" {
		return fmt.Errorf("auth: mode is %q but token is empty", AuthModeToken)
	}
	return nil
}

// AuthEnabled returns true when authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeToken
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Dataset: DatasetConfig{
			Path:       "./data/globeLexicon.csv",
			HeaderRows: 3,
			MinColumns: models.MinColumns(),
			Delimiter:  ",",
			Encoding:   dataset.EncodingUTF8,
			Watch:      true,
		},
		Lookup: LookupConfig{
			DefaultSource:  models.ModeleFR.ID(),
			DefaultCompare: models.ModeleEN.ID(),
		},
		Auth: AuthConfig{
			Mode: AuthModeDisabled,
		},
	}
}
