package ebds

import (
	"fmt"
	"math"
	"strconv"
)

// ISOCode is the three-letter ASCII currency code a note reply carries.
type ISOCode [3]byte

func ParseISOCode(b []byte) ISOCode {
	var c ISOCode
	copy(c[:], b)
	return c
}

func (c ISOCode) String() string {
	return string(c[:])
}

// BaseValue is the three-ASCII-digit base note value. Unparseable input
// decodes as zero.
type BaseValue uint16

const baseValueLen = 3

func ParseBaseValue(b []byte) BaseValue {
	if len(b) < baseValueLen {
		return 0
	}
	v, err := strconv.ParseUint(string(b[:baseValueLen]), 10, 16)
	if err != nil {
		return 0
	}
	return BaseValue(v)
}

func (v BaseValue) Bytes() [baseValueLen]byte {
	var b [baseValueLen]byte
	copy(b[:], fmt.Sprintf("%03d", uint16(v)))
	return b
}

// Sign is the ASCII '+'/'-' exponent sign. Anything other than '-'
// decodes as positive.
type Sign byte

const (
	Positive Sign = '+'
	Negative Sign = '-'
)

func ParseSign(b byte) Sign {
	if b == '-' {
		return Negative
	}
	return Positive
}

func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

// Exponent is the two-ASCII-digit power of ten scaling the base value.
// Unparseable input decodes as one.
type Exponent uint8

const exponentLen = 2

func ParseExponent(b []byte) Exponent {
	if len(b) < exponentLen {
		return 1
	}
	v, err := strconv.ParseUint(string(b[:exponentLen]), 10, 8)
	if err != nil {
		return 1
	}
	return Exponent(v)
}

func (e Exponent) Bytes() [exponentLen]byte {
	var b [exponentLen]byte
	copy(b[:], fmt.Sprintf("%02d", uint8(e)))
	return b
}

// NoteValue combines base value, sign, and exponent into the note's
// face value.
func NoteValue(base BaseValue, sign Sign, exp Exponent) float64 {
	v := float64(base)
	e := float64(exp)
	if sign == Negative {
		return v * math.Pow(10, -e)
	}
	return v * math.Pow(10, e)
}

// BaseDenomination is one 10-byte row of the value table: note index,
// ISO code, and the ASCII-encoded value triple.
type BaseDenomination struct {
	NoteIndex int
	ISOCode   ISOCode
	BaseValue BaseValue
	Sign      Sign
	Exponent  Exponent
}

const baseDenominationLen = 10

// Row layout inside a value-table entry.
const (
	denomIndexOff    = 0
	denomISOOff      = 1
	denomBaseOff     = 4
	denomSignOff     = 7
	denomExponentOff = 8
)

func parseBaseDenomination(b []byte) BaseDenomination {
	return BaseDenomination{
		NoteIndex: int(b[denomIndexOff]),
		ISOCode:   ParseISOCode(b[denomISOOff : denomISOOff+3]),
		BaseValue: ParseBaseValue(b[denomBaseOff:]),
		Sign:      ParseSign(b[denomSignOff]),
		Exponent:  ParseExponent(b[denomExponentOff:]),
	}
}

func (d BaseDenomination) Value() float64 {
	return NoteValue(d.BaseValue, d.Sign, d.Exponent)
}

func (d BaseDenomination) String() string {
	return fmt.Sprintf("{note_index: %d, iso_code: %s, base_value: %d, "+
		"sign: %s, exponent: %d}",
		d.NoteIndex, d.ISOCode, d.BaseValue, d.Sign, d.Exponent)
}
