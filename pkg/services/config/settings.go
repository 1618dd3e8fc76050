package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/idfwu/ccem/pkg/services/issues"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const EnvPrefix = "CCEM"

type LinearSettings struct {
	ProfilesPath string `mapstructure:"profiles_path"`
	Profile      string `mapstructure:"profile"`
}

type ServerSettings struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type Settings struct {
	StatusPath          string         `mapstructure:"status_path"`
	EpicDescriptionPath string         `mapstructure:"epic_description_path"`
	OutputPath          string         `mapstructure:"output_path"`
	LogLevel            string         `mapstructure:"log_level"`
	Linear              LinearSettings `mapstructure:"linear"`
	Server              ServerSettings `mapstructure:"server"`
}

// Dir is the per-user ccem directory, e.g. ~/.claude/ccem.
func Dir(home string) string {
	return filepath.Join(home, ".claude", "ccem")
}

// DefaultConfigPath is read when no --config flag is given and the file exists.
func DefaultConfigPath(home string) string {
	return filepath.Join(Dir(home), "config.yaml")
}

// NewViper returns a viper instance with defaults rooted at home and
// CCEM_* environment overrides (CCEM_SERVER_PORT for server.port).
func NewViper(home string) *viper.Viper {
	v := viper.New()

	v.SetDefault("status_path", filepath.Join(Dir(home), "security-audit-status.json"))
	v.SetDefault("epic_description_path", issues.DefaultEpicDescriptionPath)
	v.SetDefault("output_path", issues.DefaultOutputPath)
	v.SetDefault("log_level", "warn")
	v.SetDefault("linear.profiles_path", filepath.Join(Dir(home), "linear.cfg"))
	v.SetDefault("linear.profile", "")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file and unmarshals the merged settings.
// An explicit configPath must exist; the default path is skipped when absent.
func Load(v *viper.Viper, home, configPath string) (*Settings, error) {
	path := configPath
	if path == "" {
		path = DefaultConfigPath(home)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse ccem config: %w", err)
	}
	if _, err := settings.Level(); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *Settings) Level() (zerolog.Level, error) {
	if s.LogLevel == "" {
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	return level, nil
}

// ServerAddr returns the host:port the preview server binds to.
func (s *Settings) ServerAddr() string {
	return net.JoinHostPort(s.Server.Host, strconv.Itoa(s.Server.Port))
}
