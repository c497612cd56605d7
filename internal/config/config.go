package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  Server  `yaml:"server" json:"server"`
	Chat    Chat    `yaml:"chat" json:"chat"`
	Weather Weather `yaml:"weather" json:"weather"`
}

// Duration parses yaml values like "45s" or "2m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type Server struct {
	Addr    string `yaml:"addr" json:"addr"`
	DataDir string `yaml:"data_dir" json:"data_dir"`
}

type Chat struct {
	Endpoint string   `yaml:"endpoint" json:"endpoint"`
	APIKey   string   `yaml:"api_key" json:"-"`
	Timeout  Duration `yaml:"timeout" json:"timeout"`
}

type Weather struct {
	CacheTTL Duration `yaml:"cache_ttl" json:"cache_ttl"`
}

func Default() Config {
	return Config{
		Server: Server{
			Addr:    ":8080",
			DataDir: "data",
		},
		Chat: Chat{
			Timeout: Duration(2 * time.Minute),
		},
		Weather: Weather{
			CacheTTL: Duration(30 * time.Minute),
		},
	}
}

func (c *Config) ApplyDefaults() {
	d := Default()
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Server.DataDir == "" {
		c.Server.DataDir = d.Server.DataDir
	}
	if c.Chat.Timeout == 0 {
		c.Chat.Timeout = d.Chat.Timeout
	}
	if c.Weather.CacheTTL == 0 {
		c.Weather.CacheTTL = d.Weather.CacheTTL
	}
}

// Load reads the yaml config at path, then lets environment variables
// override individual fields. A missing file is not an error; env and
// defaults still apply.
func Load(path string) (*Config, error) {
	var c Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		} else if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, err
		}
	}
	c.applyEnv()
	c.ApplyDefaults()
	return &c, nil
}
