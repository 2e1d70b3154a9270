// Package input emulates the standard NES controllers as seen by the CPU
// through the $4016/$4017 ports. Host key events are translated into button
// states according to a Config.
package input

import (
	"fmt"
	"strings"
)

// A PaddleButton identifies a button of a standard NES controller/paddle.
// Buttons are declared in the order they are serially read.
type PaddleButton byte

const (
	PadA PaddleButton = iota
	PadB
	PadSelect
	PadStart
	PadUp
	PadDown
	PadLeft
	PadRight

	PadButtonCount
)

var buttonNames = [PadButtonCount]string{
	"A", "B",
	"Select", "Start",
	"Up", "Down", "Left", "Right",
}

func (pd PaddleButton) String() string {
	if pd >= PadButtonCount {
		return fmt.Sprintf("button(%d)", pd)
	}
	return buttonNames[pd]
}

func (pd PaddleButton) MarshalText() ([]byte, error) {
	if pd >= PadButtonCount {
		return nil, fmt.Errorf("invalid paddle button %d", pd)
	}
	return []byte(pd.String()), nil
}

func (pd *PaddleButton) UnmarshalText(text []byte) error {
	for i, name := range buttonNames {
		if strings.EqualFold(name, string(text)) {
			*pd = PaddleButton(i)
			return nil
		}
	}
	return fmt.Errorf("unrecognized paddle button %q", text)
}

// PaddlePreset maps each button of a paddle to a host key name. An empty
// name leaves the button unmapped.
type PaddlePreset struct {
	Buttons [PadButtonCount]string `toml:"buttons"`
}

// Config holds the mapping configuration of both paddles.
type Config struct {
	Paddles [2]PaddleConfig `toml:"paddles"`
}

type PaddleConfig struct {
	Plugged bool         `toml:"plugged"`
	Preset  PaddlePreset `toml:"preset"`
}

// DefaultConfig returns a configuration with only the first paddle plugged.
func DefaultConfig() Config {
	return Config{
		Paddles: [2]PaddleConfig{
			{
				Plugged: true,
				Preset: PaddlePreset{
					Buttons: [PadButtonCount]string{
						"Z", "X", "RShift", "Return",
						"Up", "Down", "Left", "Right",
					},
				},
			},
			{Plugged: false},
		},
	}
}

// Lookup returns the paddle and button mapped to key, comparing key names
// case-insensitively.
func (cfg *Config) Lookup(key string) (pad int, btn PaddleButton, ok bool) {
	if key == "" {
		return 0, 0, false
	}
	for pad := range cfg.Paddles {
		if !cfg.Paddles[pad].Plugged {
			continue
		}
		for i, name := range cfg.Paddles[pad].Preset.Buttons {
			if strings.EqualFold(name, key) {
				return pad, PaddleButton(i), true
			}
		}
	}
	return 0, 0, false
}

// Validate checks that no key is mapped twice.
func (cfg *Config) Validate() error {
	seen := make(map[string]string)
	for pad := range cfg.Paddles {
		if !cfg.Paddles[pad].Plugged {
			continue
		}
		for i, name := range cfg.Paddles[pad].Preset.Buttons {
			if name == "" {
				continue
			}
			cur := fmt.Sprintf("paddle %d %s", pad+1, PaddleButton(i))
			key := strings.ToLower(name)
			if prev, ok := seen[key]; ok {
				return fmt.Errorf("key %q mapped to both %s and %s", name, prev, cur)
			}
			seen[key] = cur
		}
	}
	return nil
}
