// Package config loads the optional kiln.yaml project settings.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const supportedVersion = "1"

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads kiln.yaml from root. A missing file yields the defaults.
func (l *Loader) Load(root string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	path := filepath.Join(root, domain.ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is built from the repository root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var kf Kilnfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&kf); err != nil && !errors.Is(err, io.EOF) {
		return settings, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if kf.Version != "" && kf.Version != supportedVersion {
		l.Logger.Warn("Unsupported " + domain.ConfigFileName + " version " + kf.Version + ", reading it as version " + supportedVersion)
	}

	return l.apply(settings, &kf, path)
}

func (l *Loader) apply(settings domain.Settings, kf *Kilnfile, path string) (domain.Settings, error) {
	if kf.Emsdk != "" {
		settings.EmsdkVersion = kf.Emsdk
	}
	settings.Generator = kf.Generator

	for name, value := range kf.Vars {
		if name == "" || strings.Contains(name, "=") {
			return settings, zerr.With(zerr.With(domain.ErrInvalidVariable, "variable", name), "path", path)
		}
		settings.Variables[name] = value
	}

	if kf.Server != nil {
		if kf.Server.Address != "" {
			settings.Server.Address = kf.Server.Address
		}
		if kf.Server.Port != 0 {
			if kf.Server.Port < 0 || kf.Server.Port > 65535 {
				return settings, zerr.With(zerr.With(domain.ErrConfigInvalid, "port", kf.Server.Port), "path", path)
			}
			settings.Server.Port = kf.Server.Port
		}
	}

	if kf.PublishDir != "" {
		settings.PublishDir = filepath.FromSlash(kf.PublishDir)
	}

	return settings, nil
}
