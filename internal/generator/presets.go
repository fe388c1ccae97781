// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package generator

import "fmt"

// Preset names recognized by the UI and the --preset flag.
const (
	PresetCustom    = "custom"
	PresetMemorable = "memorable"
	PresetStrong    = "strong"
	PresetPIN       = "pin"
)

// PresetNames lists the character-mode presets in display order.
var PresetNames = []string{PresetCustom, PresetMemorable, PresetStrong, PresetPIN}

// PresetConfig returns the character-mode configuration for a named preset.
// The "custom" preset returns the caller's config unchanged so the UI can
// keep user-tuned values.
func PresetConfig(name string, current Config) (Config, error) {
	switch name {
	case PresetCustom, "":
		return current, nil
	case PresetMemorable:
		cfg := current
		cfg.Classes[Lowercase] = ClassSpec{Enabled: true, Minimum: 1}
		cfg.Classes[Uppercase] = ClassSpec{Enabled: true, Minimum: 1}
		cfg.Classes[Digits] = ClassSpec{}
		cfg.Classes[Symbols] = ClassSpec{}
		cfg.Length = 16
		cfg.ExcludeAmbiguous = true
		return cfg, nil
	case PresetStrong:
		cfg := current
		for i := range cfg.Classes {
			cfg.Classes[i] = ClassSpec{Enabled: true, Minimum: 1}
		}
		cfg.Length = 20
		cfg.ExcludeAmbiguous = true
		return cfg, nil
	case PresetPIN:
		cfg := current
		cfg.Classes[Lowercase] = ClassSpec{}
		cfg.Classes[Uppercase] = ClassSpec{}
		cfg.Classes[Digits] = ClassSpec{Enabled: true, Minimum: 4}
		cfg.Classes[Symbols] = ClassSpec{}
		cfg.Length = 8
		cfg.ExcludeAmbiguous = false
		return cfg, nil
	default:
		return current, fmt.Errorf("unknown preset %q", name)
	}
}
