package area

import (
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	// MaxMemberBytes bounds the summed WKB size of a relation's members
	// before any parsing happens.
	MaxMemberBytes int `yaml:"max_member_bytes"`

	// TimeoutMS bounds the wall-clock cost of a single assembly.
	TimeoutMS int `yaml:"timeout_ms"`

	// Workers sets the pipeline concurrency, NumCPU when zero.
	Workers int `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		MaxMemberBytes: 500000,
		TimeoutMS:      1000,
	}
}

func LoadConfig(configPath string) (*Config, error) {
	data, err := ioutil.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
