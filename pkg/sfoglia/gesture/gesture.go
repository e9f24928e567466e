// Package gesture enumerates the touch gestures recognized by the framework.
// Gesture recognition itself happens in the platform layer (or in an external
// recognizer); panels only ever see the resulting Kind.
package gesture

// Kind identifies a recognized touch gesture.
type Kind int

const (
	None Kind = iota
	SwipeUp
	SwipeDown
	SwipeLeft
	SwipeRight
	PinchIn
	PinchOut
	LongPress
)

// String returns the stable name used in binding files.
func (k Kind) String() string {
	switch k {
	case SwipeUp:
		return "swipe_up"
	case SwipeDown:
		return "swipe_down"
	case SwipeLeft:
		return "swipe_left"
	case SwipeRight:
		return "swipe_right"
	case PinchIn:
		return "pinch_in"
	case PinchOut:
		return "pinch_out"
	case LongPress:
		return "long_press"
	default:
		return "none"
	}
}

// FromName returns the Kind for a binding-file name, or None if unknown.
func FromName(name string) Kind {
	for k := SwipeUp; k <= LongPress; k++ {
		if k.String() == name {
			return k
		}
	}
	return None
}
