package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/wheelibin/erbridge/internal/constants"
)

var ErrMissingHost = errors.New("host is required")

type BridgeConfig struct {
	Name        string `mapstructure:"name"`
	Pin         string `mapstructure:"pin"`
	StoragePath string `mapstructure:"storagePath"`
	Addr        string `mapstructure:"addr"`
}

type ClientConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	RateLimit float64       `mapstructure:"rateLimit"`
	Events    bool          `mapstructure:"events"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	// when set, logs are written to this (rotated) file instead of stderr
	File string `mapstructure:"file"`
}

type Config struct {
	// address of the machine running the lighting software
	Host   string       `mapstructure:"host"`
	Mode   string       `mapstructure:"mode"`
	Bridge BridgeConfig `mapstructure:"bridge"`
	Client ClientConfig `mapstructure:"client"`
	Log    LogConfig    `mapstructure:"log"`
}

func SetDefaults(v *viper.Viper) {
	// registered so the env/flag value is picked up by Unmarshal
	v.SetDefault("host", "")
	v.SetDefault("mode", constants.ModeRGB)
	v.SetDefault("bridge.name", constants.DefaultBridgeName)
	v.SetDefault("bridge.pin", constants.DefaultBridgePin)
	v.SetDefault("bridge.storagePath", constants.DefaultStoragePath)
	v.SetDefault("bridge.addr", constants.DefaultBridgeAddr)
	v.SetDefault("client.timeout", constants.DefaultClientTimeout)
	v.SetDefault("client.rateLimit", constants.DefaultRateLimit)
	v.SetDefault("client.events", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// ReadConfig loads the config from configFile, or searches the usual locations when it is empty.
// A missing config file is fine as long as the host is provided some other way (env or flags).
func ReadConfig(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix("erbridge")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("/etc/erbridge/")
		v.AddConfigPath("$HOME/.config/erbridge/")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Host) == "" {
		return ErrMissingHost
	}

	switch c.Mode {
	case constants.ModeRGB, constants.ModeHS:
	default:
		return fmt.Errorf("unknown light mode %q (expected %q or %q)", c.Mode, constants.ModeRGB, constants.ModeHS)
	}

	if c.Client.RateLimit < 0 {
		return fmt.Errorf("client.rateLimit must not be negative, got %v", c.Client.RateLimit)
	}

	return nil
}
