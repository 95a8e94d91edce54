package config

import (
	"dommorph/helper"
	"dommorph/pkg/assembler"
	"dommorph/pkg/homoglyph"
	"dommorph/pkg/tldswap"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Configuration represents a configuration element
type Configuration struct {
	TLDs            []string
	Homoglyphs      homoglyph.Table
	Techniques      []string
	WhoisTimeout    time.Duration
	WhoisServer     string
	SlackWebHookURL string
	SlackIconURL    string
	SlackUsername   string
	LogLevel        string
	Progress        bool
	OutputDir       string
	DebugAddr       string
	Log             *log.Logger
}

// GetConfig provides a Configuration, read from configFile if not empty, then from
// environment variables
func GetConfig(configFile string) (*Configuration, error) {
	c := &Configuration{}

	v := viper.New()
	v.SetDefault("TLDs", tldswap.GetDefaultTLDs())
	v.SetDefault("Homoglyphs", map[string][]string(homoglyph.GetDefaultTable()))
	v.SetDefault("Techniques", assembler.GetDefaultTechniques())
	v.SetDefault("WhoisTimeout", "30s")
	v.SetDefault("WhoisServer", "")
	v.SetDefault("SlackWebhookURL", "")
	v.SetDefault("SlackIconURL", "")
	v.SetDefault("SlackUsername", "Dommorph")
	v.SetDefault("LogLevel", "info")
	v.SetDefault("Progress", true)
	v.SetDefault("OutputDir", ".")
	v.SetDefault("DebugAddr", "")

	if configFile != "" {
		d, f := path.Split(configFile)
		if d == "" {
			d = "."
		}
		v.SetConfigName(f[0 : len(f)-len(filepath.Ext(f))])
		v.AddConfigPath(d)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "error when reading config file %v", configFile)
		}
	}
	v.AutomaticEnv()
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "error when decoding configuration")
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Configuration) validate() error {
	if c.SlackUsername == "" {
		c.SlackUsername = "Dommorph"
	}

	tlds := []string{}
	for _, t := range c.TLDs {
		if t = tldswap.Normalize(t); t != "" {
			tlds = append(tlds, t)
		}
	}
	c.TLDs = helper.RemoveDuplicate(tlds)
	if len(c.TLDs) == 0 {
		c.TLDs = tldswap.GetDefaultTLDs()
	}

	if len(c.Homoglyphs) == 0 {
		c.Homoglyphs = homoglyph.GetDefaultTable()
	}
	for letter, glyphs := range c.Homoglyphs {
		if utf8.RuneCountInString(letter) != 1 {
			return errors.Errorf("homoglyph key %q must be a single character", letter)
		}
		for _, g := range glyphs {
			if utf8.RuneCountInString(g) != 1 {
				return errors.Errorf("homoglyph %q of %q must be a single character", g, letter)
			}
		}
	}

	for i := range c.Techniques {
		c.Techniques[i] = strings.ToLower(strings.TrimSpace(c.Techniques[i]))
	}
	if len(c.Techniques) == 0 {
		c.Techniques = assembler.GetDefaultTechniques()
	}
	if err := assembler.ValidateTechniques(c.Techniques); err != nil {
		return err
	}

	if c.WhoisTimeout < 0 {
		return errors.New("WhoisTimeout can't be negative")
	}

	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "bad log level")
	}
	c.Log = log.StandardLogger()
	c.Log.SetOutput(os.Stderr)
	c.Log.SetLevel(level)
	c.Log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	return nil
}

// AssemblerOptions returns the options to build the candidates from this configuration
func (c *Configuration) AssemblerOptions() assembler.Options {
	return assembler.Options{
		Techniques: c.Techniques,
		Homoglyphs: c.Homoglyphs,
		TLDs:       c.TLDs,
	}
}
