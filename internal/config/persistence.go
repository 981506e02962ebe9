// file: internal/config/persistence.go
// version: 2.0.0
// guid: 9c8d7e6f-5a4b-3c2d-1e0f-9a8b7c6d5e4f

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the default config file in the user's home directory.
const ConfigFileName = ".iptc-organizer.yaml"

// ErrConfigExists is returned when SaveConfigToFile would overwrite a file.
var ErrConfigExists = errors.New("config file already exists")

// ErrUnknownSetting is returned by ApplySetting for keys it does not know.
var ErrUnknownSetting = errors.New("unknown setting")

// ConfigFilePath returns $HOME/.iptc-organizer.yaml, or "" when the home
// directory cannot be determined.
func ConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigFileName)
}

type fileServer struct {
	Host              string `yaml:"host"`
	Port              int    `yaml:"port"`
	MaxBodyBytes      int64  `yaml:"max_body_bytes"`
	RequestsPerMinute int    `yaml:"requests_per_minute"`
	BasicAuthUsername string `yaml:"basic_auth_username,omitempty"`
	BasicAuthPassword string `yaml:"basic_auth_password,omitempty"`
}

type fileWatch struct {
	Debounce string `yaml:"debounce"`
}

// fileConfig is the on-disk layout; keys match the viper keys.
type fileConfig struct {
	Backup          bool       `yaml:"backup"`
	BackupDir       string     `yaml:"backup_dir"`
	MaxBackups      int        `yaml:"max_backups"`
	VerifyChecksums bool       `yaml:"verify_checksums"`
	Sort            bool       `yaml:"sort"`
	Quiet           bool       `yaml:"quiet"`
	NoValidate      bool       `yaml:"no_validate"`
	OutputFormat    string     `yaml:"output_format"`
	FallbackCharset string     `yaml:"fallback_charset"`
	Server          fileServer `yaml:"server"`
	Watch           fileWatch  `yaml:"watch"`
}

func toFile(c Config) fileConfig {
	return fileConfig{
		Backup:          c.Backup,
		BackupDir:       c.BackupDir,
		MaxBackups:      c.MaxBackups,
		VerifyChecksums: c.VerifyChecksums,
		Sort:            c.Sort,
		Quiet:           c.Quiet,
		NoValidate:      c.NoValidate,
		OutputFormat:    c.OutputFormat,
		FallbackCharset: c.FallbackCharset,
		Server: fileServer{
			Host:              c.Server.Host,
			Port:              c.Server.Port,
			MaxBodyBytes:      c.Server.MaxBodyBytes,
			RequestsPerMinute: c.Server.RequestsPerMinute,
			BasicAuthUsername: c.Server.BasicAuthUsername,
			BasicAuthPassword: c.Server.BasicAuthPassword,
		},
		Watch: fileWatch{Debounce: c.Watch.Debounce.String()},
	}
}

// Marshal renders c as YAML.
func Marshal(c Config) ([]byte, error) {
	data, err := yaml.Marshal(toFile(c))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// SaveConfigToFile writes c to path. An existing file is kept unless
// overwrite is set.
func SaveConfigToFile(path string, c Config, overwrite bool) error {
	if path == "" {
		return fmt.Errorf("cannot determine config file path")
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrConfigExists)
		}
	}

	data, err := Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	// 0600 since the file may carry the basic auth password
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	log.Printf("[INFO] Configuration saved to file: %s", path)
	return nil
}

// LoadConfigFromFile reads path and applies every key it contains on top
// of base. Unknown keys are logged and skipped.
func LoadConfigFromFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return base, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	settings := map[string]string{}
	flatten("", raw, settings)
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cfg := base
	applied := 0
	for _, key := range keys {
		if err := applySetting(&cfg, key, settings[key]); err != nil {
			log.Printf("[WARN] Failed to apply setting %s: %v", key, err)
			continue
		}
		applied++
	}
	log.Printf("[DEBUG] Applied %d settings from config file %s", applied, path)
	return cfg, nil
}

func flatten(prefix string, in map[string]any, out map[string]string) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = fmt.Sprint(v)
	}
}

// ApplySetting sets one dotted key ("server.port") on c from its string
// form.
func ApplySetting(c *Config, key, value string) error {
	return applySetting(c, key, value)
}

// applySetting applies a single setting to c
func applySetting(c *Config, key, value string) error {
	parseBool := func(dst *bool) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = b
		return nil
	}
	parseInt := func(dst *int) error {
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = i
		return nil
	}

	switch key {
	// Writing
	case "backup":
		return parseBool(&c.Backup)
	case "backup_dir":
		c.BackupDir = value
	case "max_backups":
		return parseInt(&c.MaxBackups)
	case "verify_checksums":
		return parseBool(&c.VerifyChecksums)
	case "sort":
		return parseBool(&c.Sort)
	case "no_validate":
		return parseBool(&c.NoValidate)

	// Output
	case "quiet":
		return parseBool(&c.Quiet)
	case "output_format":
		c.OutputFormat = value
	case "fallback_charset":
		c.FallbackCharset = value

	// Server
	case "server.host":
		c.Server.Host = value
	case "server.port":
		return parseInt(&c.Server.Port)
	case "server.max_body_bytes":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.Server.MaxBodyBytes = n
	case "server.requests_per_minute":
		return parseInt(&c.Server.RequestsPerMinute)
	case "server.basic_auth_username":
		c.Server.BasicAuthUsername = value
	case "server.basic_auth_password":
		c.Server.BasicAuthPassword = value

	// Watcher
	case "watch.debounce":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.Watch.Debounce = d

	default:
		return fmt.Errorf("%q: %w", key, ErrUnknownSetting)
	}
	return nil
}
