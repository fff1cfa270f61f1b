package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTrainingDir   = "data/training"
	DefaultEvaluationDir = "data/evaluation"
	DefaultExtension     = ".json"
	DefaultOutDir        = "figures"
	DefaultPanelSize     = 400
	DefaultFPS           = 30
)

// Display modes.
const (
	ModeWindow = "window"
	ModeSVG    = "svg"
)

type Config struct {
	Datasets  DatasetsConfig `yaml:"datasets"`
	Extension string         `yaml:"extension"`
	Debug     bool           `yaml:"debug"`
	Display   DisplayConfig  `yaml:"display"`
	Console   ConsoleConfig  `yaml:"console"`
}

// DatasetsConfig names the two source directories. Training is the default
// choice in the browser, Evaluation the alternate.
type DatasetsConfig struct {
	Training   string `yaml:"training"`
	Evaluation string `yaml:"evaluation"`
}

type DisplayConfig struct {
	Mode      string `yaml:"mode"`
	OutDir    string `yaml:"out_dir"`
	PanelSize int    `yaml:"panel_size"`
	FPS       int    `yaml:"fps"`
}

type ConsoleConfig struct {
	Color    bool `yaml:"color"`
	Markdown bool `yaml:"markdown"`
}

func DefaultConfig() *Config {
	return &Config{
		Datasets: DatasetsConfig{
			Training:   DefaultTrainingDir,
			Evaluation: DefaultEvaluationDir,
		},
		Extension: DefaultExtension,
		Display: DisplayConfig{
			Mode:      ModeWindow,
			OutDir:    DefaultOutDir,
			PanelSize: DefaultPanelSize,
			FPS:       DefaultFPS,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Datasets.Training == "" || c.Datasets.Evaluation == "" {
		return fmt.Errorf("config: both dataset directories must be set")
	}
	if c.Extension == "" {
		return fmt.Errorf("config: extension must not be empty")
	}
	switch c.Display.Mode {
	case ModeWindow, ModeSVG:
	default:
		return fmt.Errorf("config: unknown display mode %q (want %s or %s)", c.Display.Mode, ModeWindow, ModeSVG)
	}
	if c.Display.PanelSize <= 0 {
		return fmt.Errorf("config: panel_size must be positive, got %d", c.Display.PanelSize)
	}
	if c.Display.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.Display.FPS)
	}
	return nil
}

// ApplyPreset replaces the dataset directories with a named layout.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", name, ListPresets())
	}
	c.Datasets = *p
	return nil
}
