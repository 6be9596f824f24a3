// engine/internal/config/config.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Backend struct {
		BaseURL        string  `yaml:"base_url" json:"base_url"`
		TimeoutSeconds int     `yaml:"timeout_seconds" json:"timeout_seconds"`
		RatePerSec     float64 `yaml:"rate_per_sec" json:"rate_per_sec"`
		RateBurst      int     `yaml:"rate_burst" json:"rate_burst"`
	} `yaml:"backend" json:"backend"`

	Identity struct {
		SessionURL     string `yaml:"session_url" json:"session_url"`
		RefreshSeconds int    `yaml:"refresh_seconds" json:"refresh_seconds"`
		Account        string `yaml:"account" json:"account"`
	} `yaml:"identity" json:"identity"`

	Search struct {
		Keywords string `yaml:"keywords" json:"keywords"`
		Location string `yaml:"location" json:"location"`
	} `yaml:"search" json:"search"`

	Courses struct {
		TopN int `yaml:"top_n" json:"top_n"`
	} `yaml:"courses" json:"courses"`

	Interview struct {
		NumTechnical   int `yaml:"num_technical" json:"num_technical"`
		NumBehavioral  int `yaml:"num_behavioral" json:"num_behavioral"`
		NumSituational int `yaml:"num_situational" json:"num_situational"`
	} `yaml:"interview" json:"interview"`

	Cache struct {
		MaxAgeDays   int `yaml:"max_age_days" json:"max_age_days"`
		SweepSeconds int `yaml:"sweep_seconds" json:"sweep_seconds"`
	} `yaml:"cache" json:"cache"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
