package backend

import (
	"context"
	"errors"
	"testing"

	"chromactl/pkg/color"
	"chromactl/pkg/device"
)

func TestEvofoxFrame(t *testing.T) {
	s := device.Settings{
		Color:      color.Color{R: 255, G: 0, B: 128},
		Effect:     "breathing",
		Brightness: 100,
		Speed:      50,
	}
	buf := frame(s)
	if len(buf) != 10 {
		t.Fatalf("frame length = %d, want 10", len(buf))
	}
	if buf[0] != 0x06 || buf[1] != 0x01 || buf[2] != 0xFF {
		t.Errorf("bad frame preamble % x", buf[:3])
	}
	if buf[3] != 255 || buf[4] != 0 || buf[5] != 128 {
		t.Errorf("bad color bytes % x", buf[3:6])
	}
	if buf[6] != 0x02 {
		t.Errorf("effect code = %#x, want 0x02 (breathing)", buf[6])
	}
	if buf[7] != byte(50*255/100) {
		t.Errorf("speed byte = %d, want %d", buf[7], 50*255/100)
	}
	if buf[8] != 255 {
		t.Errorf("brightness byte = %d, want 255", buf[8])
	}

	var sum byte
	for _, b := range buf[:9] {
		sum += b
	}
	if buf[9] != sum {
		t.Errorf("checksum = %#x, want %#x", buf[9], sum)
	}
}

func TestEvofoxFrameUnknownEffectFallsBackToStatic(t *testing.T) {
	s := device.Settings{
		Color:      color.Color{R: 10, G: 20, B: 30},
		Effect:     "comet",
		Brightness: 50,
		Speed:      50,
	}
	buf := frame(s)
	if buf[6] != evofoxEffectCodes["static"] {
		t.Errorf("effect code = %#x, want static fallback %#x", buf[6], evofoxEffectCodes["static"])
	}
}

func TestEvofoxUnavailableWithoutPort(t *testing.T) {
	e := NewEvofox(EvofoxConfig{})
	_, err := e.Scan(context.Background())
	if !errors.Is(err, device.ErrUnavailable) {
		t.Fatalf("Scan err = %v, want ErrUnavailable", err)
	}
	if err := e.Apply(context.Background(), "evofox", device.Off()); !errors.Is(err, device.ErrUnavailable) {
		t.Fatalf("Apply err = %v, want ErrUnavailable", err)
	}
}
