package input

// Gamepad is a standard controller. Its buttons are read serially, one bit
// per read, in PaddleButton order, wrapping after Right.
type Gamepad struct {
	buttons [PadButtonCount]bool
	strobe  PaddleButton // next button to report
}

func (gp *Gamepad) SetButton(btn PaddleButton, pressed bool) {
	gp.buttons[btn] = pressed
}

func (gp *Gamepad) Pressed(btn PaddleButton) bool {
	return gp.buttons[btn]
}

// Next returns the state of the current button in the strobe sequence (1
// if pressed) and moves to the next one.
func (gp *Gamepad) Next() uint8 {
	var state uint8
	if gp.buttons[gp.strobe] {
		state = 1
	}
	gp.strobe = (gp.strobe + 1) % PadButtonCount
	return state
}

// Reset moves the strobe sequence back to the A button.
func (gp *Gamepad) Reset() {
	gp.strobe = PadA
}
