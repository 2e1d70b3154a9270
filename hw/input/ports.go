package input

import (
	"nescart/hw/hwio"
	"nescart/log"
)

// Ports exposes two gamepads to the CPU bus. A write to $4016 resets the
// strobe sequence of both pads, reads from $4016 and $4017 return the next
// button bit of pad 1 and pad 2.
type Ports struct {
	In  hwio.Reg8 // $4016
	Out hwio.Reg8 // $4017

	Pads [2]Gamepad
}

const (
	InAddr  = 0x4016
	OutAddr = 0x4017
)

func NewPorts() *Ports {
	ip := &Ports{}
	ip.In = hwio.Reg8{Name: "IN", ReadCb: ip.ReadIN, PeekCb: ip.peek(0), WriteCb: ip.WriteIN}
	ip.Out = hwio.Reg8{Name: "OUT", ReadCb: ip.ReadOUT, PeekCb: ip.peek(1)}
	return ip
}

// Map installs the ports on the bus.
func (ip *Ports) Map(t *hwio.Table) {
	t.MapReg8(InAddr, &ip.In)
	t.MapReg8(OutAddr, &ip.Out)
}

func (ip *Ports) WriteIN(_, _ uint8) {
	ip.Pads[0].Reset()
	ip.Pads[1].Reset()
}

func (ip *Ports) ReadIN(_ uint8) uint8 {
	return ip.Pads[0].Next()
}

func (ip *Ports) ReadOUT(_ uint8) uint8 {
	return ip.Pads[1].Next()
}

func (ip *Ports) peek(pad int) func(uint8) uint8 {
	return func(uint8) uint8 {
		gp := ip.Pads[pad]
		return gp.Next()
	}
}

// HandleKey updates the button mapped to key, if any. It returns false if
// key isn't mapped.
func (ip *Ports) HandleKey(cfg *Config, key string, down bool) bool {
	pad, btn, ok := cfg.Lookup(key)
	if !ok {
		return false
	}
	ip.Pads[pad].SetButton(btn, down)

	log.ModInput.DebugZ("button").
		Int("pad", pad+1).
		Stringer("button", btn).
		Bool("down", down).
		End()
	return true
}
