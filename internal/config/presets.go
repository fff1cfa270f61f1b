package config

import "sort"

// Presets are the directory layouts of the published ARC checkouts, relative
// to the directory the repositories were cloned into.
var Presets = map[string]*DatasetsConfig{
	"local": {
		Training:   DefaultTrainingDir,
		Evaluation: DefaultEvaluationDir,
	},
	"arc-agi": {
		Training:   "ARC-AGI/data/training",
		Evaluation: "ARC-AGI/data/evaluation",
	},
	"arc-agi-2": {
		Training:   "ARC-AGI-2/data/training",
		Evaluation: "ARC-AGI-2/data/evaluation",
	},
}

func GetPreset(name string) *DatasetsConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
