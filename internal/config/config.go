package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/moka-lang/moka/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyInterpreter   = "interpreter"
	KeyBridgeTimeout = "bridge_timeout"
	KeyResourcesDir  = "resources_dir"
	KeyLogLevel      = "log_level"
	KeyLogFormat     = "log_format"
)

// Defaults applied by Load.
const (
	DefaultInterpreter   = "python3"
	DefaultBridgeTimeout = 5 * time.Minute
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
)

// Keys lists every recognized key in display order.
var Keys = []string{KeyInterpreter, KeyBridgeTimeout, KeyResourcesDir, KeyLogLevel, KeyLogFormat}

// Settings is the typed view of the loaded configuration.
type Settings struct {
	Interpreter   string
	BridgeTimeout time.Duration
	ResourcesDir  string
	LogLevel      string
	LogFormat     string
}

// Dir returns the path to the Moka config directory (~/.moka/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.moka/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// MOKA_INTERPRETER, MOKA_BRIDGE_TIMEOUT and friends override the file.
func Load() {
	LoadFile(FilePath())
}

// LoadFile is Load with an explicit config file path.
func LoadFile(path string) {
	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyInterpreter, DefaultInterpreter)
	viper.SetDefault(KeyBridgeTimeout, DefaultBridgeTimeout)
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)
	viper.SetDefault(KeyLogFormat, DefaultLogFormat)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the typed settings from the loaded configuration.
func Current() Settings {
	return Settings{
		Interpreter:   viper.GetString(KeyInterpreter),
		BridgeTimeout: viper.GetDuration(KeyBridgeTimeout),
		ResourcesDir:  viper.GetString(KeyResourcesDir),
		LogLevel:      viper.GetString(KeyLogLevel),
		LogFormat:     viper.GetString(KeyLogFormat),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set validates and writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := validate(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = FilePath()
	}

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func validate(key, value string) error {
	switch key {
	case KeyBridgeTimeout:
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
	case KeyLogFormat:
		if value != "text" && value != "json" && value != "logfmt" {
			return fmt.Errorf("invalid %s %q: expected text, json or logfmt", key, value)
		}
	case KeyInterpreter, KeyResourcesDir, KeyLogLevel:
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
