package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultQuotesFile       = "quotes.psv"
	DefaultEasterEggTrigger = "plz"
	DefaultEasterEggReply   = "Wow, manners! Nobody has ever said please to me before. I'm so overwhelmed I forgot every quote I know."
	DefaultStatusText       = "BoJack Horseman"
)

type Config struct {
	Quotes struct {
		File          string `yaml:"file"`
		SkipMalformed bool   `yaml:"skip_malformed"`
	} `yaml:"quotes"`
	Commands struct {
		Prefixes         []string `yaml:"prefixes"`
		EasterEggTrigger string   `yaml:"easter_egg_trigger"`
		EasterEggReply   string   `yaml:"easter_egg_reply"`
	} `yaml:"commands"`
	Status struct {
		Text string `yaml:"text"`
	} `yaml:"status"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Metrics struct {
		Addr string `yaml:"addr"`
	} `yaml:"metrics"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	config := &Config{}
	config.Quotes.File = DefaultQuotesFile
	config.Commands.Prefixes = []string{"/", "!"}
	config.Commands.EasterEggTrigger = DefaultEasterEggTrigger
	config.Commands.EasterEggReply = DefaultEasterEggReply
	config.Status.Text = DefaultStatusText
	config.Log.Level = "info"
	config.Log.Format = "text"
	return config
}

// LoadConfig reads a YAML config file on top of the defaults. A missing file
// is not an error.
func LoadConfig(path string) (*Config, error) {
	config := Default()

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return config, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(file, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
