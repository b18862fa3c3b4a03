package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golangci/golangci-hooks/internal/shared/logutil"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type EnvConfig struct {
	log logutil.Log
}

var _ Config = EnvConfig{}

func NewEnvConfig(log logutil.Log) *EnvConfig {
	return &EnvConfig{
		log: log,
	}
}

// LoadEnvFiles loads existing files in order, later files override earlier ones.
// Missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return errors.Wrapf(err, "can't stat %s", p)
		}

		if err := godotenv.Overload(p); err != nil {
			return errors.Wrapf(err, "can't load %s", p)
		}
	}

	return nil
}

func (c EnvConfig) GetString(key string) string {
	return c.getValue(key)
}

func (c EnvConfig) getValue(key string) string {
	return strings.TrimSpace(os.Getenv(strings.ToUpper(key)))
}

func (c EnvConfig) GetStringList(key string) []string {
	var ret []string
	for _, v := range strings.Split(c.getValue(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			ret = append(ret, v)
		}
	}

	return ret
}

func (c EnvConfig) GetDuration(key string, def time.Duration) time.Duration {
	cfgStr := c.getValue(key)
	if cfgStr == "" {
		return def
	}

	d, err := time.ParseDuration(cfgStr)
	if err != nil {
		c.log.Warnf("Config: invalid %s %q: %s", key, cfgStr, err)
		return def
	}

	return d
}

func (c EnvConfig) GetInt(key string, def int) int {
	cfgStr := c.getValue(key)
	if cfgStr == "" {
		return def
	}

	v, err := strconv.Atoi(cfgStr)
	if err != nil {
		c.log.Warnf("Config: invalid %s %q: %s", key, cfgStr, err)
		return def
	}

	return v
}

func (c EnvConfig) GetBool(key string, def bool) bool {
	cfgStr := c.getValue(key)
	if cfgStr == "" {
		return def
	}

	if cfgStr == "1" || cfgStr == "true" {
		return true
	}

	if cfgStr == "0" || cfgStr == "false" {
		return false
	}

	c.log.Warnf("Config: invalid %s %q", key, cfgStr)
	return def
}
