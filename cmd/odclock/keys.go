package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/richardwooding/odclock/internal/input"
)

// lookupKey parses an ebiten key name such as "ArrowLeft" or "ControlLeft".
func lookupKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("%w: %q", input.ErrUnknownKey, name)
	}
	return k, nil
}

func resolveKeys(km input.Keymap) (map[ebiten.Key][]input.Action, error) {
	return input.Resolve(km, lookupKey)
}
