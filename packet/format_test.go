package packet_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/robolink/padlink/packet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	type testCase struct {
		name     string
		packet   packet.InputsPacket
		expected string
	}

	cases := []testCase{
		{
			name: "axes only",
			packet: packet.InputsPacket{
				Flags:       packet.AllReleased,
				LeftStickX:  512,
				LeftStickY:  0,
				RightStickX: 1023,
				RightStickY: 1,
			},
			expected: "Lx512y0Rx1023y1\n\n",
		},
		{
			name:     "select and 1",
			packet:   packet.InputsPacket{Flags: packet.AllReleased &^ (packet.ButtonSelect | packet.Button1)},
			expected: "Lx0y0Rx0y0\nSelect,1\n",
		},
		{
			name:     "last flag has no trailing comma",
			packet:   packet.InputsPacket{Flags: packet.AllReleased &^ (packet.ButtonRightZ1 | packet.ButtonLeftStick)},
			expected: "Lx0y0Rx0y0\nRZ1,L_STICK\n",
		},
		{
			name:     "single flag",
			packet:   packet.InputsPacket{Flags: packet.AllReleased &^ packet.ButtonRightStick},
			expected: "Lx0y0Rx0y0\nR_STICK\n",
		},
		{
			name:     "everything held",
			packet:   packet.InputsPacket{Flags: 0, LeftStickX: 1, LeftStickY: 22, RightStickX: 333, RightStickY: 1000},
			expected: "Lx1y22Rx333y1000\nSelect,Start,Up,Down,Left,Right,1,2,3,4,RZ1,RZ2,LZ1,LZ2,L_STICK,R_STICK\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, packet.Format(&buf, tc.packet))
			assert.Equal(t, tc.expected, buf.String())
			assert.Equal(t, tc.expected, tc.packet.String())
		})
	}
}

func TestFormatOrderIgnoresMaskOrder(t *testing.T) {
	var p packet.InputsPacket
	p.Flags = packet.AllReleased
	p.Press(packet.ButtonLeftZ1)
	p.Press(packet.ButtonDown)
	p.Press(packet.Button4)

	lines := strings.Split(p.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Down,4,LZ1", lines[1])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestFormatWriterError(t *testing.T) {
	err := packet.Format(failingWriter{}, packet.InputsPacket{Flags: packet.AllReleased})
	assert.EqualError(t, err, "sink closed")
}

func TestButtonNames(t *testing.T) {
	assert.Equal(t, "Select", packet.ButtonSelect.String())
	assert.Equal(t, "1", packet.Button1.String())
	assert.Equal(t, "L_STICK", packet.ButtonLeftStick.String())
	assert.Equal(t, "Button(0x0003)", (packet.ButtonSelect | packet.ButtonStart).String())

	for _, b := range packet.Buttons {
		got, err := packet.ParseButton(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}

	b, err := packet.ParseButton("left_stick_button")
	require.NoError(t, err)
	assert.Equal(t, packet.ButtonLeftStick, b)

	b, err = packet.ParseButton(" RIGHT_Z2 ")
	require.NoError(t, err)
	assert.Equal(t, packet.ButtonRightZ2, b)

	_, err = packet.ParseButton("turbo")
	assert.Error(t, err)

	mask, err := packet.ParseButtons([]string{"select", "", "button1"})
	require.NoError(t, err)
	assert.Equal(t, packet.ButtonSelect|packet.Button1, mask)

	_, err = packet.ParseButtons([]string{"select", "nope"})
	assert.Error(t, err)
}
