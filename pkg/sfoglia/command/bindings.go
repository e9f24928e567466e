package command

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/gesture"
)

var (
	keyBindings     map[int32]Command
	gestureBindings map[gesture.Kind]Command
)

func init() {
	ResetBindings()
}

// ResetBindings restores the default key and gesture bindings.
func ResetBindings() {
	keyBindings = map[int32]Command{
		int32(sdl.K_ESCAPE):    Menu,
		int32(sdl.K_BACKSPACE): Back,
		int32(sdl.K_RETURN):    Confirm,
		int32(sdl.K_SPACE):     Confirm,
		int32(sdl.K_UP):        Up,
		int32(sdl.K_DOWN):      Down,
		int32(sdl.K_LEFT):      Left,
		int32(sdl.K_RIGHT):     Right,
		int32(sdl.K_PAGEUP):    PageUp,
		int32(sdl.K_PAGEDOWN):  PageDown,
		int32(sdl.K_EQUALS):    ZoomIn,
		int32(sdl.K_MINUS):     ZoomOut,
		int32(sdl.K_F1):        Help,
		int32(sdl.K_F12):       Screenshot,
	}
	gestureBindings = map[gesture.Kind]Command{
		gesture.SwipeRight: Back,
		gesture.SwipeDown:  Menu,
		gesture.SwipeUp:    PageUp,
		gesture.SwipeLeft:  PageDown,
		gesture.PinchOut:   ZoomIn,
		gesture.PinchIn:    ZoomOut,
		gesture.LongPress:  Help,
	}
}

// Bind maps a raw key code to a command, replacing any previous binding
// for that key.
func Bind(key int32, cmd Command) {
	if cmd == None {
		delete(keyBindings, key)
		return
	}
	keyBindings[key] = cmd
}

// BindGesture maps a gesture kind to a command.
func BindGesture(kind gesture.Kind, cmd Command) {
	if cmd == None {
		delete(gestureBindings, kind)
		return
	}
	gestureBindings[kind] = cmd
}

// bindingsFile is the on-disk TOML layout:
//
//	[keys]
//	confirm = [13, 32]
//
//	[gestures]
//	swipe_right = "back"
type bindingsFile struct {
	Keys     map[string][]int32 `toml:"keys"`
	Gestures map[string]string  `toml:"gestures"`
}

// LoadBindings replaces the current bindings with the contents of a TOML
// file. Unknown command or gesture names are skipped; the defaults for
// anything the file does not mention are kept.
func LoadBindings(path string) error {
	var file bindingsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return fmt.Errorf("command: load bindings %q: %w", path, err)
	}

	for name, keys := range file.Keys {
		cmd := FromName(name)
		if cmd == None {
			continue
		}
		for _, key := range keys {
			keyBindings[key] = cmd
		}
	}
	for gestureName, commandName := range file.Gestures {
		kind := gesture.FromName(gestureName)
		cmd := FromName(commandName)
		if kind == gesture.None || cmd == None {
			continue
		}
		gestureBindings[kind] = cmd
	}
	return nil
}

// SaveBindings writes the current bindings to a TOML file.
func SaveBindings(path string) error {
	file := bindingsFile{
		Keys:     make(map[string][]int32),
		Gestures: make(map[string]string),
	}
	for key, cmd := range keyBindings {
		name := cmd.String()
		file.Keys[name] = append(file.Keys[name], key)
	}
	for kind, cmd := range gestureBindings {
		file.Gestures[kind.String()] = cmd.String()
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("command: save bindings %q: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(file); err != nil {
		return fmt.Errorf("command: save bindings %q: %w", path, err)
	}
	return nil
}
