package demo

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

const (
	modeInsert  = "insert"
	modeEmplace = "emplace"
)

type Config struct {
	Records []RecordConfig `yaml:"records"`
	Remove  []int          `yaml:"remove"`
	Metrics MetricsConfig  `yaml:"metrics"`
}

type RecordConfig struct {
	ID          int    `yaml:"id"`
	Description string `yaml:"description"`
	Index       int    `yaml:"index"`
	Mode        string `yaml:"mode"` // [insert|emplace], default is insert
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// defaultConfig is used when no config file is given.
func defaultConfig() *Config {
	return &Config{
		Records: []RecordConfig{
			{ID: 100, Description: "test1", Index: 0, Mode: modeInsert},
			{ID: 101, Description: "test2", Index: 1, Mode: modeInsert},
			{ID: 102, Description: "test3", Index: 2, Mode: modeEmplace},
			{ID: 103, Description: "test4", Index: 3, Mode: modeInsert},
			{ID: 104, Description: "test5", Index: 4, Mode: modeEmplace},
		},
	}
}

func loadConfig(b []byte) (*Config, error) {
	cfg := new(Config)
	m := make(map[string]any)
	if err := yaml.Unmarshal(b, m); err != nil {
		return nil, fmt.Errorf("failed to decode yaml config, %w", err)
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		TagName:     "yaml",
		Result:      cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init yaml decoder, %w", err)
	}
	if err := decoder.Decode(m); err != nil {
		return nil, fmt.Errorf("failed to decode yaml struct, %w", err)
	}

	for i, rc := range cfg.Records {
		switch rc.Mode {
		case "":
			cfg.Records[i].Mode = modeInsert
		case modeInsert, modeEmplace:
		default:
			return nil, fmt.Errorf("record #%d has invalid mode [%s]", i, rc.Mode)
		}
	}
	return cfg, nil
}

func loadConfigFile(p string) (*Config, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	return loadConfig(b)
}

func genConfigTemplate(o string) error {
	cfg := defaultConfig()
	cfg.Remove = []int{0}

	b := new(bytes.Buffer)
	encoder := yaml.NewEncoder(b)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config, %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to encode config, %w", err)
	}

	if len(o) == 0 || o == "stdout" {
		_, err := os.Stdout.Write(b.Bytes())
		return err
	}
	return os.WriteFile(o, b.Bytes(), 0644)
}
