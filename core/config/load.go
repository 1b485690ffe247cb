package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(path string) (*Configuration, error) {
	return load(afero.NewOsFs(), path)
}

func load(fsys afero.Fs, path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	configContents, err := afero.ReadFile(fsys, filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}
	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", ConfigurationName, err)
	}
	out.configFs = fsys
	out.configurationDir = path
	return &out, nil
}

// Resolve loads the configuration in path, falling back to Default if there
// is none, then applies environment overrides and validates the result.
func Resolve(path string) (*Configuration, error) {
	return resolve(afero.NewOsFs(), path)
}

func resolve(fsys afero.Fs, path string) (*Configuration, error) {
	cfg, err := load(fsys, path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg = Default()
		cfg.configFs = fsys
	case err != nil:
		return nil, err
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Initialize writes the default configuration to dir. An existing
// configuration is left alone.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	return initialize(afero.NewOsFs(), dir, logger)
}

func initialize(fsys afero.Fs, dir string, logger *log.Logger) (*Configuration, error) {
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	configPath := filepath.Join(dir, ConfigurationName)
	switch exists, err := afero.Exists(fsys, configPath); {
	case err != nil:
		return nil, err
	case exists:
		logger.Printf("%s already exists, leaving it unchanged", configPath)
	default:
		logger.Printf("Writing %s", configPath)
		if err := afero.WriteFile(fsys, configPath, defaultConfigData, 0644); err != nil {
			return nil, err
		}
	}

	return load(fsys, dir)
}
