package input

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key. Values match GLFW key codes, so a
// glfw.Key converts directly with Key(k).
type Key int

// Key constants for the default bindings
const (
	KeySpace     Key = 32
	KeyA         Key = 65
	KeyC         Key = 67
	KeyD         Key = 68
	KeyI         Key = 73
	KeyJ         Key = 74
	KeyK         Key = 75
	KeyL         Key = 76
	KeyS         Key = 83
	KeyW         Key = 87
	KeyEscape    Key = 256
	KeyLeftShift Key = 340
	KeyLeftCtrl  Key = 341
)

var keyNames = map[string]Key{
	"space":     KeySpace,
	"escape":    KeyEscape,
	"leftshift": KeyLeftShift,
	"leftctrl":  KeyLeftCtrl,
}

// ParseKey resolves a key name such as "w", "Space" or "LeftShift".
// Single letters and digits map to their GLFW codes.
func ParseKey(name string) (Key, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNames[lower]; ok {
		return k, nil
	}
	if len(lower) == 1 {
		ch := lower[0]
		switch {
		case ch >= 'a' && ch <= 'z':
			return Key(ch - 'a' + 'A'), nil
		case ch >= '0' && ch <= '9':
			return Key(ch), nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}
