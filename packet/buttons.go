package packet

import (
	"fmt"
	"strings"
)

// Button is a bit mask over the 16 flag bits of an inputs packet.
type Button uint16

// Button bits in declaration (and wire) order.
const (
	ButtonSelect Button = 1 << iota
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	Button1
	Button2
	Button3
	Button4
	ButtonRightZ1
	ButtonRightZ2
	ButtonLeftZ1
	ButtonLeftZ2
	ButtonLeftStick
	ButtonRightStick
)

// AllReleased is the flag word with nothing pressed. Flags are active-low.
const AllReleased Button = 0xFFFF

// Buttons lists every flag in declaration order.
var Buttons = [16]Button{
	ButtonSelect, ButtonStart, ButtonUp, ButtonDown, ButtonLeft, ButtonRight,
	Button1, Button2, Button3, Button4,
	ButtonRightZ1, ButtonRightZ2, ButtonLeftZ1, ButtonLeftZ2,
	ButtonLeftStick, ButtonRightStick,
}

var buttonNames = [16]struct{ short, field string }{
	{"Select", "select"},
	{"Start", "start"},
	{"Up", "up"},
	{"Down", "down"},
	{"Left", "left"},
	{"Right", "right"},
	{"1", "button1"},
	{"2", "button2"},
	{"3", "button3"},
	{"4", "button4"},
	{"RZ1", "right_z1"},
	{"RZ2", "right_z2"},
	{"LZ1", "left_z1"},
	{"LZ2", "left_z2"},
	{"L_STICK", "left_stick_button"},
	{"R_STICK", "right_stick_button"},
}

// String returns the debug name of a single button, e.g. "Select" or "RZ1".
// Masks with more or fewer than one bit set render as hex.
func (b Button) String() string {
	for i, bb := range Buttons {
		if b == bb {
			return buttonNames[i].short
		}
	}
	return fmt.Sprintf("Button(0x%04x)", uint16(b))
}

// ParseButton resolves a button by its debug name ("Select", "1", "L_STICK")
// or by its field name ("select", "button1", "left_stick_button").
// Matching is case-insensitive.
func ParseButton(name string) (Button, error) {
	n := strings.TrimSpace(name)
	for i, names := range buttonNames {
		if strings.EqualFold(n, names.short) || strings.EqualFold(n, names.field) {
			return Buttons[i], nil
		}
	}
	return 0, fmt.Errorf("unknown button %q", name)
}

// ParseButtons ORs together every named button.
func ParseButtons(names []string) (Button, error) {
	var out Button
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		b, err := ParseButton(n)
		if err != nil {
			return 0, err
		}
		out |= b
	}
	return out, nil
}
