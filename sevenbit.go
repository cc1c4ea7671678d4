package ebds

// Seven-bit protocol encoding for legacy firmware-download links: each
// output byte carries four significant bits in its low nibble, high
// nibble first.

func PackSeven16(n uint16) [4]byte {
	return [4]byte{
		byte(n>>12) & 0xf,
		byte(n>>8) & 0xf,
		byte(n>>4) & 0xf,
		byte(n) & 0xf,
	}
}

func UnpackSeven16(b []byte) uint16 {
	return uint16(b[0]&0xf)<<12 |
		uint16(b[1]&0xf)<<8 |
		uint16(b[2]&0xf)<<4 |
		uint16(b[3]&0xf)
}

func PackSeven8(n byte) [2]byte {
	return [2]byte{n >> 4, n & 0xf}
}

func UnpackSeven8(b []byte) byte {
	return b[0]<<4 | b[1]&0xf
}
