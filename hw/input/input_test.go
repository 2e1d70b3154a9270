package input

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"nescart/hw/hwio"
)

func TestGamepadStrobeOrder(t *testing.T) {
	var gp Gamepad
	gp.SetButton(PadA, true)
	gp.SetButton(PadStart, true)
	gp.SetButton(PadRight, true)

	want := []uint8{1, 0, 0, 1, 0, 0, 0, 1}
	var got []uint8
	for range 2 * len(want) {
		got = append(got, gp.Next())
	}
	if diff := cmp.Diff(append(want, want...), got); diff != "" {
		t.Fatalf("strobe sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestGamepadReset(t *testing.T) {
	var gp Gamepad
	gp.SetButton(PadA, true)

	gp.Next()
	gp.Next()
	gp.Next()
	gp.Reset()
	if got := gp.Next(); got != 1 {
		t.Fatalf("after Reset, Next() = %d, want 1 (A)", got)
	}
}

func TestPortsBus(t *testing.T) {
	bus := hwio.NewTable("cpu")
	ports := NewPorts()
	ports.Map(bus)

	ports.Pads[0].SetButton(PadB, true)
	ports.Pads[1].SetButton(PadSelect, true)

	readAll := func(addr uint16) []uint8 {
		var bits []uint8
		for range PadButtonCount {
			bits = append(bits, bus.Read8(addr, false))
		}
		return bits
	}

	bus.Write8(InAddr, 1)
	bus.Write8(InAddr, 0)
	if diff := cmp.Diff([]uint8{0, 1, 0, 0, 0, 0, 0, 0}, readAll(InAddr)); diff != "" {
		t.Errorf("pad 1 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint8{0, 0, 1, 0, 0, 0, 0, 0}, readAll(OutAddr)); diff != "" {
		t.Errorf("pad 2 mismatch (-want +got):\n%s", diff)
	}

	// Partially read pad 1, a write resets both pads.
	bus.Read8(InAddr, false)
	bus.Read8(OutAddr, false)
	bus.Write8(InAddr, 0)
	if got := bus.Read8(InAddr, false); got != 0 {
		t.Errorf("pad 1 A = %d, want 0", got)
	}
	if got := bus.Read8(InAddr, false); got != 1 {
		t.Errorf("pad 1 B = %d, want 1", got)
	}

	// Writes to $4017 leave the sequence alone.
	bus.Write8(OutAddr, 0)
	if got := bus.Read8(InAddr, false); got != 0 {
		t.Errorf("pad 1 Select = %d, want 0", got)
	}
}

func TestPortsPeek(t *testing.T) {
	bus := hwio.NewTable("cpu")
	ports := NewPorts()
	ports.Map(bus)
	ports.Pads[0].SetButton(PadA, true)

	for range 3 {
		if got := bus.Peek8(InAddr); got != 1 {
			t.Fatalf("Peek8 = %d, want 1", got)
		}
	}
	if got := bus.Read8(InAddr, false); got != 1 {
		t.Fatalf("Read8 after peeks = %d, want 1", got)
	}
}

func TestHandleKey(t *testing.T) {
	cfg := DefaultConfig()
	ports := NewPorts()

	if !ports.HandleKey(&cfg, "return", true) {
		t.Fatalf("Return should be mapped")
	}
	if !ports.Pads[0].Pressed(PadStart) {
		t.Errorf("Start not pressed")
	}
	ports.HandleKey(&cfg, "Return", false)
	if ports.Pads[0].Pressed(PadStart) {
		t.Errorf("Start still pressed")
	}
	if ports.HandleKey(&cfg, "F10", true) {
		t.Errorf("F10 should not be mapped")
	}

	// Second paddle is unplugged by default.
	cfg.Paddles[1].Preset.Buttons[PadA] = "K"
	if ports.HandleKey(&cfg, "K", true) {
		t.Errorf("key mapped on unplugged paddle")
	}
	cfg.Paddles[1].Plugged = true
	if !ports.HandleKey(&cfg, "K", true) || !ports.Pads[1].Pressed(PadA) {
		t.Errorf("paddle 2 A not pressed")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	cfg.Paddles[1].Plugged = true
	cfg.Paddles[1].Preset.Buttons[PadB] = "z"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("Validate() should reject a key mapped twice")
	}
}

func TestPaddleButtonText(t *testing.T) {
	for btn := range PadButtonCount {
		text, err := btn.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got PaddleButton
		if err := got.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if got != btn {
			t.Errorf("round trip of %s gave %s", btn, got)
		}
	}

	var btn PaddleButton
	if err := btn.UnmarshalText([]byte("Turbo")); err == nil {
		t.Errorf("UnmarshalText(Turbo) should fail")
	}
}
