package core

import "testing"

func TestColorBytesClamps(t *testing.T) {
	cases := []struct {
		name string
		in   Color4
		want [4]byte
	}{
		{"white", ColorWhite, [4]byte{255, 255, 255, 255}},
		{"black", ColorBlack, [4]byte{0, 0, 0, 255}},
		{"overbright", Color4{2, 1.5, 1, 1}, [4]byte{255, 255, 255, 255}},
		{"negative", Color4{-0.5, 0, 0.5, 1}, [4]byte{0, 0, 128, 255}},
	}
	for _, tc := range cases {
		if got := tc.in.Bytes(); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestColorScaleLeavesAlpha(t *testing.T) {
	c := Color4{0.2, 0.4, 0.6, 0.5}.Scale(0.5)
	if c != (Color4{0.1, 0.2, 0.3, 0.5}) {
		t.Errorf("Unexpected scaled color %+v", c)
	}
}

func TestColorIsUsableAsMapKey(t *testing.T) {
	m := map[Color4]int{}
	m[RGBA(0.1, 0.2, 0.3, 1)] = 1
	m[RGBA(0.1, 0.2, 0.3, 1)] = 2
	m[RGBA(0.1, 0.2, 0.3, 0.5)] = 3

	if len(m) != 2 {
		t.Errorf("Expected bitwise-equal colors to collide, distinct alpha to split: %v", m)
	}
	if m[RGBA(0.1, 0.2, 0.3, 1)] != 2 {
		t.Errorf("Expected later write to win for equal key")
	}
}
