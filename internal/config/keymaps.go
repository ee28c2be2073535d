package config

// KeyMappings defines the board viewer's key bindings
type KeyMappings struct {
	// Navigation
	PrevBoard string `yaml:"prev_board"`
	NextBoard string `yaml:"next_board"`
	PrevCard  string `yaml:"prev_card"`
	NextCard  string `yaml:"next_card"`

	// Moving cards
	MoveCardLeft  string `yaml:"move_card_left"`
	MoveCardRight string `yaml:"move_card_right"`
	MoveCardUp    string `yaml:"move_card_up"`
	MoveCardDown  string `yaml:"move_card_down"`

	// Other
	NewCard  string `yaml:"new_card"`
	Reload   string `yaml:"reload"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevBoard: "h",
		NextBoard: "l",
		PrevCard:  "k",
		NextCard:  "j",

		MoveCardLeft:  "H",
		MoveCardRight: "L",
		MoveCardUp:    "K",
		MoveCardDown:  "J",

		NewCard:  "n",
		Reload:   "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()
	fill(&k.PrevBoard, d.PrevBoard)
	fill(&k.NextBoard, d.NextBoard)
	fill(&k.PrevCard, d.PrevCard)
	fill(&k.NextCard, d.NextCard)
	fill(&k.MoveCardLeft, d.MoveCardLeft)
	fill(&k.MoveCardRight, d.MoveCardRight)
	fill(&k.MoveCardUp, d.MoveCardUp)
	fill(&k.MoveCardDown, d.MoveCardDown)
	fill(&k.NewCard, d.NewCard)
	fill(&k.Reload, d.Reload)
	fill(&k.ShowHelp, d.ShowHelp)
	fill(&k.Quit, d.Quit)
}

func fill(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}
