package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

type AppConfig struct {
	Server ServerConfig `yaml:"server"`
}

var Config AppConfig

const defaultPort = 8080

// LoadAppConfig reads config.yml from the working directory and applies
// defaults. A missing file is not an error, the defaults are enough to
// run the planner.
func LoadAppConfig() error {
	cfg := AppConfig{Server: ServerConfig{Port: defaultPort}}

	data, err := os.ReadFile("config.yml")
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return err
		}
		if cfg.Server.Port == 0 {
			cfg.Server.Port = defaultPort
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}

	Config = cfg
	return nil
}
