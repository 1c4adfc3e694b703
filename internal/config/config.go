package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	defaultConfigName = ".kubetab"
	defaultConfigDir  = ".kubetab"
	envPrefix         = "KUBETAB"

	defaultOutput = "table"
)

// Manager handles kubetab settings
type Manager struct {
	configPath string
	settings   *Settings
	viper      *viper.Viper
}

// NewManager creates a new settings manager. An empty configPath searches
// ~/.kubetab/ and ~/ for .kubetab.yaml.
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
		viper:      viper.New(),
		settings:   &Settings{},
	}
}

// Load reads the settings file and environment. A missing file yields defaults.
func (m *Manager) Load() (*Settings, error) {
	if m.configPath != "" {
		m.viper.SetConfigFile(m.configPath)
	} else {
		// Without a home directory only env and defaults apply
		if home, err := os.UserHomeDir(); err == nil {
			m.viper.AddConfigPath(filepath.Join(home, defaultConfigDir))
			m.viper.AddConfigPath(home)
		}
		m.viper.SetConfigName(defaultConfigName)
		m.viper.SetConfigType("yaml")
	}

	m.viper.SetEnvPrefix(envPrefix)
	m.viper.AutomaticEnv()
	for _, key := range []string{"output", "noColor", "noHeaders", "strictNamespace"} {
		// AutomaticEnv only covers keys viper already knows about
		if err := m.viper.BindEnv(key, envName(key)); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	m.settings = &Settings{}

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := m.viper.Unmarshal(m.settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	m.applyDefaults()

	return m.settings, nil
}

// ConfigFileUsed returns the settings file that was read, or "" if none
func (m *Manager) ConfigFileUsed() string {
	if _, err := os.Stat(m.viper.ConfigFileUsed()); err != nil {
		return ""
	}
	return m.viper.ConfigFileUsed()
}

// applyDefaults sets default values for settings
func (m *Manager) applyDefaults() {
	if m.settings == nil {
		return
	}

	if m.settings.Output == "" {
		m.settings.Output = defaultOutput
	}
}

// envName maps a settings key to its environment variable, e.g. noColor -> KUBETAB_NO_COLOR
func envName(key string) string {
	name := make([]byte, 0, len(key)+len(envPrefix)+4)
	name = append(name, envPrefix...)
	name = append(name, '_')
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c >= 'A' && c <= 'Z' {
			name = append(name, '_')
		} else if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		name = append(name, c)
	}
	return string(name)
}
