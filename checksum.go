package ebds

const (
	STX byte = 0x02
	ETX byte = 0x03
	ENQ byte = 0x05
)

// Checksum XOR-folds b left to right. Empty input folds to 0.
func Checksum(b []byte) byte {
	var cs byte
	for _, x := range b {
		cs ^= x
	}
	return cs
}

// SetChecksum stamps the trailing checksum byte, folded over LEN through
// the byte before ETX.
func SetChecksum(b []byte) {
	b[len(b)-1] = Checksum(b[1 : len(b)-2])
}

func checksum(b []byte) bool {
	return b[len(b)-1] == Checksum(b[1:len(b)-2])
}

func validateChecksum(b []byte) error {
	if len(b) < MIN_MESSAGE || len(b) > MAX_MESSAGE {
		return LengthErr{Got: len(b)}
	}
	if cs := Checksum(b[1 : len(b)-2]); cs != b[len(b)-1] {
		return ChecksumErr{Got: b[len(b)-1], Want: cs}
	}
	return nil
}
