package ebds

import (
	"fmt"
	"strconv"
)

// PartNumberType classifies a firmware part number by its numeric range.
type PartNumberType byte

const (
	UnknownPart PartNumberType = 0
	Type1Part   PartNumberType = 1
	Type2Part   PartNumberType = 2
	VariantPart PartNumberType = 3
)

func (t PartNumberType) String() string {
	switch t {
	case Type1Part:
		return "Type1"
	case Type2Part:
		return "Type2"
	case VariantPart:
		return "Variant"
	default:
		return "Unknown"
	}
}

const (
	projectNumberLen = 6
	type1NumberLen   = 5
	type2NumberLen   = 6
	checkDigitIdx    = 5

	// Non-digit check digit bytes parse to this sentinel.
	invalidCheckDigit = 0xff
)

// ProjectNumber is a parsed six-byte ASCII part number. Type 1 and
// variant numbers are five digits plus a check digit; type 2 numbers
// use all six digits.
type ProjectNumber struct {
	Number     uint32
	CheckDigit uint8
	Type       PartNumberType
}

func ParseProjectNumber(b []byte) ProjectNumber {
	if len(b) < projectNumberLen {
		return ProjectNumber{}
	}

	five, err := strconv.ParseUint(string(b[:type1NumberLen]), 10, 32)
	if err != nil {
		five = 0
	}
	six, err := strconv.ParseUint(string(b[:type2NumberLen]), 10, 32)
	if err != nil {
		six = 0
	}

	switch {
	case five >= 28000 && five <= 28599:
		return ProjectNumber{uint32(five), checkDigit(b[checkDigitIdx]), Type1Part}
	case five >= 49000 && five <= 49999 || five >= 51000 && five <= 52999:
		return ProjectNumber{uint32(five), checkDigit(b[checkDigitIdx]), VariantPart}
	case six >= 286000 && six <= 289999:
		return ProjectNumber{uint32(six), invalidCheckDigit, Type2Part}
	default:
		return ProjectNumber{}
	}
}

func checkDigit(b byte) uint8 {
	if b < '0' || b > '9' {
		return invalidCheckDigit
	}
	return b - '0'
}

func (n ProjectNumber) String() string {
	switch n.Type {
	case Type1Part, VariantPart:
		return fmt.Sprintf("%d check digit: %d", n.Number, n.CheckDigit)
	case Type2Part:
		return strconv.FormatUint(uint64(n.Number), 10)
	default:
		return "Unknown"
	}
}

const partVersionLen = 3

// PartVersion is the three-digit ASCII firmware version, displayed as
// major.minor hundredths, e.g. 123 is V1.23.
type PartVersion uint16

func ParsePartVersion(b []byte) PartVersion {
	if len(b) < partVersionLen {
		return 0
	}
	v, err := strconv.ParseUint(string(b[:partVersionLen]), 10, 16)
	if err != nil || v > 999 {
		return 0
	}
	return PartVersion(v)
}

func (v PartVersion) String() string {
	return fmt.Sprintf("V%.2f", float64(v)/100)
}

const (
	projectNumIndex  = 3
	partVersionIndex = 9
)

// partNumberReply is the shared shell of the five part-number style
// replies: six ASCII project number bytes at offset 3, three ASCII
// version bytes at offset 9.
type partNumberReply struct {
	nopReply
}

func newPartNumberReply(n int) partNumberReply {
	return partNumberReply{nopReply{newMessage(n, AuxCommandMsg)}}
}

func (r *partNumberReply) ProjectNumber() ProjectNumber {
	return ParseProjectNumber(r.buf[projectNumIndex:partVersionIndex])
}

func (r *partNumberReply) Version() PartVersion {
	return ParsePartVersion(r.buf[partVersionIndex:r.etxIndex()])
}

func (r *partNumberReply) SetPartNumber(number, version string) {
	copy(r.buf[projectNumIndex:partVersionIndex], number)
	copy(r.buf[partVersionIndex:r.etxIndex()], version)
	r.SetChecksum()
}

func (r *partNumberReply) partNumber(name string) string {
	return fmt.Sprintf("%s{AckNak: %t, DeviceType: %s, "+
		"ProjectNumber: %s, Version: %s}",
		name, r.AckNak(), r.DeviceType(), r.ProjectNumber(), r.Version())
}

// QueryBootPartNumberReply carries the boot firmware part number.
type QueryBootPartNumberReply struct {
	partNumberReply
}

func NewQueryBootPartNumberReply() *QueryBootPartNumberReply {
	return &QueryBootPartNumberReply{
		newPartNumberReply(queryBootPartNumberReplyLen),
	}
}

func (r *QueryBootPartNumberReply) String() string {
	return r.partNumber("QueryBootPartNumberReply")
}

// QueryApplicationPartNumberReply carries the application firmware part
// number.
type QueryApplicationPartNumberReply struct {
	partNumberReply
}

func NewQueryApplicationPartNumberReply() *QueryApplicationPartNumberReply {
	return &QueryApplicationPartNumberReply{
		newPartNumberReply(queryAppPartNumberReplyLen),
	}
}

func (r *QueryApplicationPartNumberReply) String() string {
	return r.partNumber("QueryApplicationPartNumberReply")
}

// QueryVariantPartNumberReply carries the variant part number.
type QueryVariantPartNumberReply struct {
	partNumberReply
}

func NewQueryVariantPartNumberReply() *QueryVariantPartNumberReply {
	return &QueryVariantPartNumberReply{
		newPartNumberReply(queryVariantPartNumberReplyLen),
	}
}

func (r *QueryVariantPartNumberReply) String() string {
	return r.partNumber("QueryVariantPartNumberReply")
}

// QueryApplicationIdReply carries the application part number of the
// currently running firmware.
type QueryApplicationIdReply struct {
	partNumberReply
}

func NewQueryApplicationIdReply() *QueryApplicationIdReply {
	return &QueryApplicationIdReply{
		newPartNumberReply(queryApplicationIdReplyLen),
	}
}

func (r *QueryApplicationIdReply) String() string {
	return r.partNumber("QueryApplicationIdReply")
}

// QueryVariantIdReply carries the variant part number of the currently
// loaded note table.
type QueryVariantIdReply struct {
	partNumberReply
}

func NewQueryVariantIdReply() *QueryVariantIdReply {
	return &QueryVariantIdReply{
		newPartNumberReply(queryVariantIdReplyLen),
	}
}

func (r *QueryVariantIdReply) String() string {
	return r.partNumber("QueryVariantIdReply")
}
