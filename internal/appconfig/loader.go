package appconfig

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for every setting: the
// nested key redis.addr (Config.Redis tagged "redis", its Addr tagged
// "addr") resolves to DOCKVEDIC_REDIS_ADDR.
const envPrefix = "DOCKVEDIC"

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvs(v, Config{})
	return v
}

// bindEnvs recursively binds every mapstructure-tagged field of iface to an
// environment variable, since viper's AutomaticEnv alone does not discover
// nested keys that are absent from both the config file and an explicit
// Set call.
func bindEnvs(v *viper.Viper, iface interface{}, parts ...string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" || tag == "," {
			continue
		}
		newParts := append(parts, tag)
		if field.Type.Kind() == reflect.Struct {
			bindEnvs(v, reflect.New(field.Type).Elem().Interface(), newParts...)
		} else {
			_ = v.BindEnv(strings.Join(newParts, "."))
		}
	}
}

// Load reads configPath, merges DOCKVEDIC_* environment overrides, applies
// defaults, and validates the result. configPath may be empty, in which
// case configuration comes entirely from the environment and defaults.
func Load(configPath string) (*Config, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("appconfig: failed to read config file %q: %w", configPath, err)
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("appconfig: failed to unmarshal configuration: %w", err)
	}
	ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("appconfig: validation failed: %w", err)
	}
	return cfg, nil
}
