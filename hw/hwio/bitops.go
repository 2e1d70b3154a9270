package hwio

// Lo4 returns the low nibble of v.
func Lo4(v uint8) uint8 {
	return v & 0x0F
}

// Hi4 returns the high nibble of v, shifted down.
func Hi4(v uint8) uint8 {
	return v >> 4
}

// Bits8 extracts the width-bits wide field of v starting at bit n.
func Bits8(v uint8, n, width uint) uint8 {
	return (v >> n) & (1<<width - 1)
}
