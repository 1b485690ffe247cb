package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"

	// EnvPrefix is prepended to the envconfig name of each field, e.g.
	// TRSH_PROMPT.
	EnvPrefix = "trsh"
)

// Color modes.
const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// ErrEventLogDisabled is returned when opening an event log that isn't
// configured.
var ErrEventLogDisabled = errors.New("event log disabled")

type Configuration struct {
	configFs         afero.Fs
	configurationDir string

	Prompt       string `json:"prompt" envconfig:"prompt" validate:"required"`
	MaxArgs      int    `json:"max_args" envconfig:"max_args" validate:"gte=1,lte=4096"`
	Splash       bool   `json:"splash" envconfig:"splash"`
	Color        string `json:"color" envconfig:"color" validate:"oneof=always auto never"`
	ShowStatus   bool   `json:"show_status" envconfig:"show_status"`
	HistoryFile  string `json:"history_file" envconfig:"history_file"`
	EventLog     string `json:"event_log" envconfig:"event_log"`
	RedirectPerm int    `json:"redirect_perm" envconfig:"redirect_perm" validate:"gte=0,lte=511"`
	LogLevel     string `json:"log_level" envconfig:"log_level" validate:"oneof=debug info warn error"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// ApplyEnv overrides fields with TRSH_* environment variables that are set.
func (c *Configuration) ApplyEnv() error {
	return envconfig.Process(EnvPrefix, c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		return afero.NewOsFs()
	}
	return c.configFs
}

// Dir is the directory the configuration was loaded from.
func (c *Configuration) Dir() string {
	if c.configurationDir == "" {
		return "."
	}
	return c.configurationDir
}

func (c *Configuration) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Dir(), name)
}

// HistoryPath returns the location of the line history or an empty string if
// history isn't persisted.
func (c *Configuration) HistoryPath() string {
	if c.HistoryFile == "" {
		return ""
	}
	return c.path(c.HistoryFile)
}

// RedirectMode is the permission used to create redirect targets.
func (c *Configuration) RedirectMode() os.FileMode {
	return os.FileMode(c.RedirectPerm) & os.ModePerm
}

// OpenEventLog opens the event log in an append only state.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	if c.EventLog == "" {
		return nil, ErrEventLogDisabled
	}
	return c.fs().OpenFile(c.path(c.EventLog), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadEventLog opens the event log for reading.
func (c *Configuration) ReadEventLog() (afero.File, error) {
	if c.EventLog == "" {
		return nil, ErrEventLogDisabled
	}
	return c.fs().OpenFile(c.path(c.EventLog), os.O_RDONLY, 0600)
}

// Default returns the built in configuration without any persistent files.
func Default() *Configuration {
	out := defaultConfig()
	out.HistoryFile = ""
	out.EventLog = ""
	return out
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
