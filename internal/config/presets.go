package config

import "sort"

var Presets = map[string]*Config{
	"single": {
		Particles: 1, Steps: 1000, MaxStep: 1, Dim: 3,
	},
	"pair": {
		Particles: 2, Steps: 500, MaxStep: 2, Dim: 2,
	},
	"cloud": {
		Particles: 10, Steps: 300, MaxStep: 1, Dim: 3,
	},
	"long": {
		Particles: 3, Steps: 5000, MaxStep: 1, Dim: 3,
	},
	"jumpy": {
		Particles: 4, Steps: 200, MaxStep: 10, Dim: 2,
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset copies the walk parameters and dimension of a preset onto c.
func (c *Config) ApplyPreset(p *Config) {
	c.Particles = p.Particles
	c.Steps = p.Steps
	c.MaxStep = p.MaxStep
	if p.Dim != 0 {
		c.Dim = p.Dim
	}
}
