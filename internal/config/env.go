package config

import (
	"os"
	"time"
)

// applyEnv overrides config fields from the environment. Empty
// variables leave the file/default value alone.
func (c *Config) applyEnv() {
	if v := os.Getenv("FOCUSHUB_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("FOCUSHUB_DATA_DIR"); v != "" {
		c.Server.DataDir = v
	}
	if v := os.Getenv("FOCUSHUB_CHAT_ENDPOINT"); v != "" {
		c.Chat.Endpoint = v
	}
	if v := os.Getenv("FOCUSHUB_CHAT_API_KEY"); v != "" {
		c.Chat.APIKey = v
	}
	if v := getEnvDuration("FOCUSHUB_CHAT_TIMEOUT"); v > 0 {
		c.Chat.Timeout = Duration(v)
	}
	if v := getEnvDuration("FOCUSHUB_WEATHER_CACHE_TTL"); v > 0 {
		c.Weather.CacheTTL = Duration(v)
	}
}

func getEnvDuration(key string) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0
	}
	return d
}
