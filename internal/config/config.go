package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

// Duration unmarshals from yaml either as a string accepted by
// time.ParseDuration ("24h") or as a plain number of seconds.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	}

	var seconds int64
	if err := unmarshal(&seconds); err != nil {
		return err
	}
	*d = Duration(time.Duration(seconds) * time.Second)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type Public struct {
	AppBaseURL            string   `yaml:"app_base_url"` // prefix of verification links sent by mail
	JwtTTL                Duration `yaml:"jwt_ttl"`
	VerificationTokenTTL  Duration `yaml:"verification_token_ttl"`
	TokenCleanupInterval  Duration `yaml:"token_cleanup_interval"`
	MaxIdImageSizeBytes   int64    `yaml:"max_id_image_size_bytes"`
	AllowedImageMimeTypes []string `yaml:"allowed_image_mime_types"`
	AllowedOrigins        []string `yaml:"allowed_origins"`
	Smtp                  Smtp     `yaml:"smtp"`
	LogLevel              string   `yaml:"log_level"`
	LogJSON               bool     `yaml:"log_json"`
}

type Smtp struct {
	Host       string   `yaml:"host"`
	Port       int      `yaml:"port"`
	From       string   `yaml:"from"`
	SenderName string   `yaml:"sender_name"`
	Timeout    Duration `yaml:"timeout"`
	TLS        bool     `yaml:"tls"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	JwtKey       string `yaml:"jwt_key"`
	Pg           Pg     `yaml:"pg"`
	SmtpUsername string `yaml:"smtp_username"`
	SmtpPassword string `yaml:"smtp_password"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL.Std()
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Public.JwtTTL == 0 {
		c.Public.JwtTTL = Duration(31556926 * time.Second) // 1 year
	}
	if c.Public.VerificationTokenTTL == 0 {
		c.Public.VerificationTokenTTL = Duration(24 * time.Hour)
	}
	if c.Public.TokenCleanupInterval == 0 {
		c.Public.TokenCleanupInterval = Duration(1 * time.Hour)
	}
	if c.Public.Smtp.Timeout == 0 {
		c.Public.Smtp.Timeout = Duration(10 * time.Second)
	}
	if c.Public.MaxIdImageSizeBytes == 0 {
		c.Public.MaxIdImageSizeBytes = 5 << 20
	}
	if len(c.Public.AllowedImageMimeTypes) == 0 {
		c.Public.AllowedImageMimeTypes = []string{"image/png", "image/jpeg", "image/webp"}
	}
	if len(c.Public.AllowedOrigins) == 0 {
		c.Public.AllowedOrigins = []string{"http://localhost:3000"}
	}
}
