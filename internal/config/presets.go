package config

// Presets mirror the two watch shapes: a rectangular face with left-aligned
// rows and a round one with centered rows pushed slightly lower.
var Presets = map[string]*Config{
	"rect": {
		Layout: "rect",
		Width:  DefaultWidth,
		Rows: []RowConfig{
			{Y: 1, X: 2, Delay: 6, Bold: true},
			{Y: 3, X: 2, Delay: 3},
			{Y: 5, X: 2, Delay: 0},
		},
	},
	"round": {
		Layout: "round",
		Width:  DefaultWidth,
		Rows: []RowConfig{
			{Y: 2, X: 0, Delay: 6, Bold: true},
			{Y: 4, X: 0, Delay: 3},
			{Y: 6, X: 0, Delay: 0},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Rows = append([]RowConfig(nil), p.Rows...)
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}

// ApplyPreset replaces the layout and row geometry of c with the named preset.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return ErrUnknownPreset
	}
	c.Layout = p.Layout
	c.Width = p.Width
	c.Rows = p.Rows
	return nil
}
