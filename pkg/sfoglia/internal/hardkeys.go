package internal

import (
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/command"
)

// HardwareKeyConfig describes an evdev device whose keys should be turned
// into injected commands. Handheld devices route power and volume buttons
// through input devices SDL never sees; this bridge is how those buttons
// reach the panel stack.
type HardwareKeyConfig struct {
	DevicePath string                         // e.g. /dev/input/event1
	Bindings   map[evdev.EvCode]command.Command // key code -> command
}

// HardwareKeyBridge reads one evdev device on its own goroutine and injects
// the bound command on every key press.
type HardwareKeyBridge struct {
	device  *evdev.InputDevice
	running *atomic.Bool
	done    chan struct{}
}

// StartHardwareKeys opens the device and starts the read loop.
func StartHardwareKeys(cfg HardwareKeyConfig) (*HardwareKeyBridge, error) {
	device, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return nil, err
	}

	bridge := &HardwareKeyBridge{
		device:  device,
		running: atomic.NewBool(true),
		done:    make(chan struct{}),
	}

	go bridge.readLoop(cfg.Bindings)

	GetInternalLogger().Info("Hardware key bridge started", "device", cfg.DevicePath)
	return bridge, nil
}

func (b *HardwareKeyBridge) readLoop(bindings map[evdev.EvCode]command.Command) {
	defer close(b.done)

	for b.running.Load() {
		ev, err := b.device.ReadOne()
		if err != nil {
			if b.running.Load() {
				GetInternalLogger().Error("Hardware key read failed", "error", err)
			}
			return
		}

		// Value 1 is press; 0 is release, 2 is auto-repeat.
		if ev.Type != evdev.EV_KEY || ev.Value != 1 {
			continue
		}

		if cmd, ok := bindings[ev.Code]; ok {
			command.Inject(cmd)
		}
	}
}

// Stop ends the read loop and closes the device.
func (b *HardwareKeyBridge) Stop() {
	b.running.Store(false)
	b.device.Close()
	<-b.done
}
