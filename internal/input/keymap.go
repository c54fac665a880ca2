package input

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKey indicates a key name the frontend cannot resolve.
var ErrUnknownKey = errors.New("unknown key")

// Keymap binds each action to key names. Names are resolved by the frontend.
type Keymap map[Action][]string

// DefaultKeymap follows the GCW Zero layout: the d-pad on the arrow keys,
// A/B/X/Y on Ctrl/Alt/Space/Shift, L1/R1 on Tab/Backspace, L2/R2 on
// PageUp/PageDown, Select on Escape and Start on Enter.
func DefaultKeymap() Keymap {
	return Keymap{
		Left:           {"ArrowLeft"},
		Right:          {"ArrowRight"},
		Up:             {"ArrowUp"},
		Down:           {"ArrowDown"},
		Confirm:        {"ControlLeft"},
		Cancel:         {"AltLeft"},
		Edit:           {"Escape"},
		ModePrev:       {"Tab"},
		ModeNext:       {"Backspace"},
		ReorderLeft:    {"PageUp"},
		ReorderRight:   {"PageDown"},
		ToggleFormat:   {"ShiftLeft"},
		ToggleFirstDay: {"Space"},
		Quit:           {"Enter"},
	}
}

// ParseKeymap reads a YAML mapping of action names to key name lists on top
// of the defaults:
//
//	confirm: [KeyZ, ControlLeft]
//	quit: [KeyQ]
//
// Actions absent from the document keep their default keys.
func ParseKeymap(data []byte) (Keymap, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse keymap: %w", err)
	}

	km := DefaultKeymap()
	for name, keys := range raw {
		a, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		km[a] = keys
	}
	return km, nil
}

// LoadKeymap reads a keymap file. An empty path yields the defaults.
func LoadKeymap(path string) (Keymap, error) {
	if path == "" {
		return DefaultKeymap(), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 - path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to read keymap: %w", err)
	}
	return ParseKeymap(data)
}

// Marshal renders km as YAML keyed by action name.
func (km Keymap) Marshal() ([]byte, error) {
	raw := make(map[string][]string, len(km))
	for a, keys := range km {
		raw[a.String()] = keys
	}
	return yaml.Marshal(raw)
}

// Resolve converts every key name with lookup, returning the bindings per key.
// Unresolvable names are reported together.
func Resolve[K comparable](km Keymap, lookup func(name string) (K, error)) (map[K][]Action, error) {
	out := make(map[K][]Action)
	var errs []error
	for _, a := range Actions() {
		for _, name := range km[a] {
			k, err := lookup(name)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", a, err))
				continue
			}
			out[k] = append(out[k], a)
		}
	}
	return out, errors.Join(errs...)
}
