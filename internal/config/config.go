package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the runtime configuration of the chat sync service.
type Config struct {
	RunAddr   string `env:"RUN_ADDR"`
	LogLevel  string `env:"LOG_LEVEL"`
	UseHTTPS  bool   `env:"LINE_USE_HTTPS"`
	MediaHost string `env:"LINE_MEDIA_HOST"`
}

// Parse reads flags from args, then lets environment variables override them.
func Parse(name string, args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddr, "a", ":8080", "address and port")
	fs.StringVar(&cfg.LogLevel, "l", "debug", "log level")
	fs.BoolVar(&cfg.UseHTTPS, "https", true, "fetch media over https")
	fs.StringVar(&cfg.MediaHost, "media-host", "obs.line-apps.com", "media host")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// MediaURL is the base URL media paths are resolved against.
func (c Config) MediaURL() string {
	return MediaURL(c.UseHTTPS, c.MediaHost)
}

func MediaURL(useHTTPS bool, host string) string {
	scheme := "http"
	if useHTTPS {
		scheme = "https"
	}
	return scheme + "://" + host
}
