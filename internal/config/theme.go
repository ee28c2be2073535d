package config

// ColorScheme defines the configurable colours used by the CLI and viewer
type ColorScheme struct {
	// Preset name: "default", "monochrome" or "wave"
	Preset string `yaml:"preset"`

	Accent string `yaml:"accent"`
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`
	Error  string `yaml:"error"`

	BoardBorder    string `yaml:"board_border"`
	SelectedBorder string `yaml:"selected_border"`

	PriorityLow    string `yaml:"priority_low"`
	PriorityMedium string `yaml:"priority_medium"`
	PriorityHigh   string `yaml:"priority_high"`
	PriorityUrgent string `yaml:"priority_urgent"`
}

// DefaultColorScheme returns the default purple scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Preset:         "default",
		Accent:         "#874BFD",
		Title:          "#D75FD7",
		Subtle:         "#585858",
		Normal:         "#D0D0D0",
		Error:          "#FF5F5F",
		BoardBorder:    "#5F87D7",
		SelectedBorder: "#D75FD7",
		PriorityLow:    "#5FAF5F",
		PriorityMedium: "#5F87D7",
		PriorityHigh:   "#FFAF00",
		PriorityUrgent: "#FF0000",
	}
}

// MonochromeColorScheme returns a black and white scheme
func MonochromeColorScheme() *ColorScheme {
	return &ColorScheme{
		Preset:         "monochrome",
		Accent:         "#FFFFFF",
		Title:          "#FFFFFF",
		Subtle:         "#808080",
		Normal:         "#D0D0D0",
		Error:          "#FFFFFF",
		BoardBorder:    "#808080",
		SelectedBorder: "#FFFFFF",
		PriorityLow:    "#808080",
		PriorityMedium: "#A8A8A8",
		PriorityHigh:   "#D0D0D0",
		PriorityUrgent: "#FFFFFF",
	}
}

// WaveColorScheme returns the Kanagawa Wave scheme
func WaveColorScheme() *ColorScheme {
	return &ColorScheme{
		Preset:         "wave",
		Accent:         "#957FB8", // oniViolet
		Title:          "#7E9CD8", // crystalBlue
		Subtle:         "#727169", // fujiGray
		Normal:         "#DCD7BA", // fujiWhite
		Error:          "#E82424", // samuraiRed
		BoardBorder:    "#54546D", // sumiInk6
		SelectedBorder: "#7AA89F", // waveAqua2
		PriorityLow:    "#98BB6C", // springGreen
		PriorityMedium: "#7E9CD8",
		PriorityHigh:   "#FF9E3B", // roninYellow
		PriorityUrgent: "#FF5D62", // peachRed
	}
}

// GetPreset returns a preset scheme by name; unknown names give the default
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return MonochromeColorScheme()
	case "wave":
		return WaveColorScheme()
	default:
		return DefaultColorScheme()
	}
}

// ApplyDefaults fills empty colours from the named preset
func (c *ColorScheme) ApplyDefaults() {
	p := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = p.Preset
	}
	fill(&c.Accent, p.Accent)
	fill(&c.Title, p.Title)
	fill(&c.Subtle, p.Subtle)
	fill(&c.Normal, p.Normal)
	fill(&c.Error, p.Error)
	fill(&c.BoardBorder, p.BoardBorder)
	fill(&c.SelectedBorder, p.SelectedBorder)
	fill(&c.PriorityLow, p.PriorityLow)
	fill(&c.PriorityMedium, p.PriorityMedium)
	fill(&c.PriorityHigh, p.PriorityHigh)
	fill(&c.PriorityUrgent, p.PriorityUrgent)
}

// MergeFrom overrides colours with the non-empty values of other. A preset
// in other replaces the base before its explicit colours are applied.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = *GetPreset(other.Preset)
	}
	over := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	over(&c.Accent, other.Accent)
	over(&c.Title, other.Title)
	over(&c.Subtle, other.Subtle)
	over(&c.Normal, other.Normal)
	over(&c.Error, other.Error)
	over(&c.BoardBorder, other.BoardBorder)
	over(&c.SelectedBorder, other.SelectedBorder)
	over(&c.PriorityLow, other.PriorityLow)
	over(&c.PriorityMedium, other.PriorityMedium)
	over(&c.PriorityHigh, other.PriorityHigh)
	over(&c.PriorityUrgent, other.PriorityUrgent)
}

// PriorityColor returns the colour for a priority name
func (c *ColorScheme) PriorityColor(priority string) string {
	switch priority {
	case "low":
		return c.PriorityLow
	case "high":
		return c.PriorityHigh
	case "urgent":
		return c.PriorityUrgent
	default:
		return c.PriorityMedium
	}
}
