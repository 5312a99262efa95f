// pkg/host/engo/keys.go
package engo

import (
	"fmt"

	"github.com/EngoEngine/engo"
)

// keyCodes maps key identifiers (KeyboardEvent.code names) to engo keys.
var keyCodes = map[string]engo.Key{
	"KeyA": engo.KeyA, "KeyB": engo.KeyB, "KeyC": engo.KeyC, "KeyD": engo.KeyD,
	"KeyE": engo.KeyE, "KeyF": engo.KeyF, "KeyG": engo.KeyG, "KeyH": engo.KeyH,
	"KeyI": engo.KeyI, "KeyJ": engo.KeyJ, "KeyK": engo.KeyK, "KeyL": engo.KeyL,
	"KeyM": engo.KeyM, "KeyN": engo.KeyN, "KeyO": engo.KeyO, "KeyP": engo.KeyP,
	"KeyQ": engo.KeyQ, "KeyR": engo.KeyR, "KeyS": engo.KeyS, "KeyT": engo.KeyT,
	"KeyU": engo.KeyU, "KeyV": engo.KeyV, "KeyW": engo.KeyW, "KeyX": engo.KeyX,
	"KeyY": engo.KeyY, "KeyZ": engo.KeyZ,

	"Digit0": engo.KeyZero, "Digit1": engo.KeyOne, "Digit2": engo.KeyTwo,
	"Digit3": engo.KeyThree, "Digit4": engo.KeyFour, "Digit5": engo.KeyFive,
	"Digit6": engo.KeySix, "Digit7": engo.KeySeven, "Digit8": engo.KeyEight,
	"Digit9": engo.KeyNine,

	"ArrowUp":    engo.KeyArrowUp,
	"ArrowDown":  engo.KeyArrowDown,
	"ArrowLeft":  engo.KeyArrowLeft,
	"ArrowRight": engo.KeyArrowRight,
	"Space":      engo.KeySpace,
	"Enter":      engo.KeyEnter,
}

// KeyCode returns the engo key bound to a key identifier
func KeyCode(id string) (engo.Key, bool) {
	k, ok := keyCodes[id]
	return k, ok
}

// ButtonRegistry is the part of engo's input manager used to bind keys.
// *engo.InputManager implements it.
type ButtonRegistry interface {
	RegisterButton(name string, keys ...engo.Key)
}

// RegisterKeys binds one engo button per key identifier, named after the
// identifier itself. It fails on the first identifier engo has no key for.
func RegisterKeys(registry ButtonRegistry, ids []string) error {
	for _, id := range ids {
		code, ok := KeyCode(id)
		if !ok {
			return fmt.Errorf("no engo key for identifier %q", id)
		}
		registry.RegisterButton(id, code)
	}
	return nil
}
