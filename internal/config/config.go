// file: internal/config/config.go
// version: 2.0.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2e

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/encoding"

	"github.com/jdfalk/iptc-organizer/internal/fileops"
	"github.com/jdfalk/iptc-organizer/internal/iptc"
)

// Config holds application configuration
type Config struct {
	Backup          bool
	BackupDir       string
	MaxBackups      int
	VerifyChecksums bool
	Sort            bool
	Quiet           bool
	NoValidate      bool
	OutputFormat    string // "table" (default), "yaml" or "json"
	FallbackCharset string // used for text without a declared character set

	Server ServerConfig
	Watch  WatchConfig
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Host              string
	Port              int
	MaxBodyBytes      int64
	RequestsPerMinute int
	BasicAuthUsername string // basic auth is enabled when set
	BasicAuthPassword string
}

// WatchConfig configures the directory watcher.
type WatchConfig struct {
	Debounce time.Duration
}

var AppConfig Config

// Output formats accepted by show and inspect.
var outputFormats = []string{"table", "yaml", "json"}

// SetDefaults registers the default value of every key with viper.
func SetDefaults() {
	viper.SetDefault("backup", false)
	viper.SetDefault("backup_dir", "")
	viper.SetDefault("max_backups", 5)
	viper.SetDefault("verify_checksums", true)
	viper.SetDefault("sort", false)
	viper.SetDefault("quiet", false)
	viper.SetDefault("no_validate", false)
	viper.SetDefault("output_format", "table")
	viper.SetDefault("fallback_charset", "ISO-8859-1")

	viper.SetDefault("server.host", "127.0.0.1")
	viper.SetDefault("server.port", 8484)
	viper.SetDefault("server.max_body_bytes", 64<<20)
	viper.SetDefault("server.requests_per_minute", 120)
	viper.SetDefault("server.basic_auth_username", "")
	viper.SetDefault("server.basic_auth_password", "")

	viper.SetDefault("watch.debounce", "500ms")
}

// InitConfig initializes the application configuration
func InitConfig() {
	SetDefaults()

	AppConfig = Config{
		Backup:          viper.GetBool("backup"),
		BackupDir:       viper.GetString("backup_dir"),
		MaxBackups:      viper.GetInt("max_backups"),
		VerifyChecksums: viper.GetBool("verify_checksums"),
		Sort:            viper.GetBool("sort"),
		Quiet:           viper.GetBool("quiet"),
		NoValidate:      viper.GetBool("no_validate"),
		OutputFormat:    viper.GetString("output_format"),
		FallbackCharset: viper.GetString("fallback_charset"),
		Server: ServerConfig{
			Host:              viper.GetString("server.host"),
			Port:              viper.GetInt("server.port"),
			MaxBodyBytes:      viper.GetInt64("server.max_body_bytes"),
			RequestsPerMinute: viper.GetInt("server.requests_per_minute"),
			BasicAuthUsername: viper.GetString("server.basic_auth_username"),
			BasicAuthPassword: viper.GetString("server.basic_auth_password"),
		},
		Watch: WatchConfig{
			Debounce: viper.GetDuration("watch.debounce"),
		},
	}

	// Normalize
	if AppConfig.OutputFormat == "" {
		AppConfig.OutputFormat = "table"
	}
	if AppConfig.MaxBackups < 0 {
		AppConfig.MaxBackups = 0
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	valid := false
	for _, f := range outputFormats {
		if c.OutputFormat == f {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("output_format %q must be one of %v", c.OutputFormat, outputFormats)
	}
	if c.FallbackCharset != "" {
		if _, err := iptc.CharsetByName(c.FallbackCharset); err != nil {
			return fmt.Errorf("fallback_charset: %w", err)
		}
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive")
	}
	if c.Server.BasicAuthUsername != "" && c.Server.BasicAuthPassword == "" {
		return fmt.Errorf("server.basic_auth_password is required with a username")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}

// FileOps returns the write settings for fileops.WriteFile. A zero
// MaxBackups keeps the fileops default.
func (c Config) FileOps() fileops.OperationConfig {
	ops := fileops.DefaultConfig()
	ops.Backup = c.Backup
	ops.BackupDir = c.BackupDir
	ops.VerifyChecksums = c.VerifyChecksums
	if c.MaxBackups > 0 {
		ops.MaxBackups = c.MaxBackups
	}
	return ops
}

// Charset resolves FallbackCharset; nil means the ISO-8859-1 default.
func (c Config) Charset() (encoding.Encoding, error) {
	if c.FallbackCharset == "" {
		return nil, nil
	}
	return iptc.CharsetByName(c.FallbackCharset)
}

// Addr is the listen address of the HTTP API.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
