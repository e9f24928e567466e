// Package command maps physical input (keys, gestures, hardware buttons)
// onto logical commands. Panels receive a Command alongside every key-down
// so they can react to "confirm" or "menu" without caring which physical
// trigger produced it.
package command

import (
	"sync"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/gesture"
)

// Command is a bitset of logical actions. A single input may map to more
// than one command; panels test membership with Has.
type Command uint64

const (
	Menu Command = 1 << iota
	Back
	Confirm
	Up
	Down
	Left
	Right
	PageUp
	PageDown
	ZoomIn
	ZoomOut
	Help
	Screenshot
	Quit
)

// None is the empty command.
const None Command = 0

// Has returns true if every bit of other is set in c.
func (c Command) Has(other Command) bool {
	return other != None && c&other == other
}

var commandNames = []struct {
	cmd  Command
	name string
}{
	{Menu, "menu"},
	{Back, "back"},
	{Confirm, "confirm"},
	{Up, "up"},
	{Down, "down"},
	{Left, "left"},
	{Right, "right"},
	{PageUp, "page_up"},
	{PageDown, "page_down"},
	{ZoomIn, "zoom_in"},
	{ZoomOut, "zoom_out"},
	{Help, "help"},
	{Screenshot, "screenshot"},
	{Quit, "quit"},
}

// String returns the binding-file name of the command. Multi-bit commands
// are joined with "+".
func (c Command) String() string {
	out := ""
	for _, entry := range commandNames {
		if c.Has(entry.cmd) {
			if out != "" {
				out += "+"
			}
			out += entry.name
		}
	}
	if out == "" {
		return "none"
	}
	return out
}

// FromName returns the command for a binding-file name, or None if unknown.
func FromName(name string) Command {
	for _, entry := range commandNames {
		if entry.name == name {
			return entry.cmd
		}
	}
	return None
}

// FromKey constructs the command bound to a raw key code. Unbound keys
// yield None.
func FromKey(key int32) Command {
	return keyBindings[key]
}

// FromGesture constructs the command bound to a gesture kind. Unbound
// gestures yield None.
func FromGesture(kind gesture.Kind) Command {
	return gestureBindings[kind]
}

// The injection queue holds commands synthesized outside the normal event
// flow (gesture fallbacks, hardware buttons) for delivery on the next
// dispatch pass. The hardware key bridge injects from its own goroutine,
// so this queue is the one piece of command state that takes a lock.
var (
	injectMu sync.Mutex
	injected []Command
)

// Inject queues a command for single-shot delivery on a future dispatch
// pass. A command already waiting in the queue is not queued twice.
func Inject(cmd Command) {
	if cmd == None {
		return
	}
	injectMu.Lock()
	defer injectMu.Unlock()
	for _, queued := range injected {
		if queued == cmd {
			return
		}
	}
	injected = append(injected, cmd)
}

// DrainInjected returns all pending injected commands and clears the queue.
func DrainInjected() []Command {
	injectMu.Lock()
	defer injectMu.Unlock()
	out := injected
	injected = nil
	return out
}
