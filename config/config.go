package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port      int    `yaml:"port"`
		AssetsDir string `yaml:"assets_dir"`
	} `yaml:"server"`
	Schedule struct {
		TimetableFile string `yaml:"timetable_file"`
		SnapshotFile  string `yaml:"snapshot_file"`
	} `yaml:"schedule"`
	Data struct {
		Dir string `yaml:"dir"`
	} `yaml:"data"`
}

func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()
	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}
	err = yaml.Unmarshal(file, config)
	if err != nil {
		return nil, err
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	return config, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.AssetsDir = "assets"
	cfg.Schedule.TimetableFile = "data/timetable.json"
	cfg.Schedule.SnapshotFile = "data/bookings.json"
	cfg.Data.Dir = "data"
	return cfg
}
