package internal

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/tuannm99/tamer/internal/schema"
)

const (
	HasherLibstdcxx = "libstdcxx"
	HasherXXHash    = "xxhash"

	FormatText = "text"
	FormatYAML = "yaml"
)

type TamerConfig struct {
	Log struct {
		Level    string `mapstructure:"level"`
		Encoding string `mapstructure:"encoding"`
	} `mapstructure:"log"`

	Schema struct {
		Dir    string `mapstructure:"dir"`
		Hasher string `mapstructure:"hasher"`
	} `mapstructure:"schema"`

	Output struct {
		Format string `mapstructure:"format"`
		Color  bool   `mapstructure:"color"`
	} `mapstructure:"output"`

	Decode struct {
		Workers int `mapstructure:"workers"`
	} `mapstructure:"decode"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("schema.dir", "")
	v.SetDefault("schema.hasher", HasherLibstdcxx)
	v.SetDefault("output.format", FormatText)
	v.SetDefault("output.color", true)
	v.SetDefault("decode.workers", 4)
}

// LoadConfig reads the YAML file at path on top of the defaults; an empty
// path means defaults only. TAMER_* environment variables override both,
// e.g. TAMER_LOG_LEVEL for log.level.
func LoadConfig(path string) (*TamerConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("tamer")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg TamerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *TamerConfig) validate() error {
	if _, err := c.StringHash(); err != nil {
		return err
	}
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("config: unknown output.format %q", c.Output.Format)
	}
	if c.Decode.Workers < 1 {
		return fmt.Errorf("config: decode.workers must be positive, got %d", c.Decode.Workers)
	}
	return nil
}

// StringHash resolves schema.hasher to the parser's string hash.
func (c *TamerConfig) StringHash() (schema.StringHash, error) {
	switch c.Schema.Hasher {
	case "", HasherLibstdcxx:
		return schema.LibstdcxxHash, nil
	case HasherXXHash:
		return schema.XXHash, nil
	}
	return nil, fmt.Errorf("config: unknown schema.hasher %q", c.Schema.Hasher)
}
