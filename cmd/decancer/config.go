package main

import (
	"io"
	"io/ioutil"
	"os"
	"time"
	"unicode/utf8"

	"github.com/npillmayer/decancer"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Configuration is the YAML configuration of the decancer tool.
//
//     options: [retain_greek, retain_capitalization]
//     locale: true
//     censor:
//       words: [hello, world]
//       filler: "*"
//     cache:
//       size: 10000
//       ttl: 1h
//     log:
//       level: info
//       formatter: text
type Configuration struct {
	Options decancer.Options `yaml:"options"`
	Locale  bool             `yaml:"locale"` // add options for the user's locale
	Censor  struct {
		Words  []string `yaml:"words"`
		Filler string   `yaml:"filler"`
	} `yaml:"censor"`
	Cache struct {
		Size int64         `yaml:"size"`
		TTL  time.Duration `yaml:"ttl"`
	} `yaml:"cache"`
	Log struct {
		Level     string `yaml:"level"`
		Formatter string `yaml:"formatter"`
	} `yaml:"log"`
}

func defaultConfiguration() *Configuration {
	config := &Configuration{}
	config.Censor.Filler = "*"
	config.Cache.Size = 5000
	config.Cache.TTL = time.Hour
	config.Log.Level = "warning"
	config.Log.Formatter = "text"
	return config
}

// Parse reads a configuration, starting from the defaults.
func Parse(rd io.Reader) (*Configuration, error) {
	in, err := ioutil.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	config := defaultConfiguration()
	if err := yaml.UnmarshalStrict(in, config); err != nil {
		return nil, errors.Wrap(err, "cannot parse configuration")
	}
	if _, err := config.filler(); err != nil {
		return nil, err
	}
	return config, nil
}

// resolveConfiguration reads the configuration file at path. An empty path
// falls back to environment variable DECANCER_CONFIGURATION_PATH, and
// then to the defaults.
func resolveConfiguration(path string) (*Configuration, error) {
	if path == "" {
		path = os.Getenv("DECANCER_CONFIGURATION_PATH")
	}
	if path == "" {
		return defaultConfiguration(), nil
	}
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	config, err := Parse(fp)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return config, nil
}

// filler returns the censor filler character.
func (config *Configuration) filler() (rune, error) {
	r, size := utf8.DecodeRuneInString(config.Censor.Filler)
	if r == utf8.RuneError || size != len(config.Censor.Filler) {
		return 0, errors.Wrapf(decancer.ErrInvalidInput, "filler must be a single character, is %q",
			config.Censor.Filler)
	}
	return r, nil
}
