package ebds

import (
	"fmt"
	"strings"
)

// QueryValueTableCommand asks for the denomination value table: which
// standard denomination bit maps to which banknote value.
type QueryValueTableCommand struct {
	extCommand
}

func NewQueryValueTableCommand() *QueryValueTableCommand {
	return &QueryValueTableCommand{newExtCommand(
		queryValueTableCommandLen, QueryValueTableExt)}
}

func (c *QueryValueTableCommand) String() string {
	return fmt.Sprintf(
		"QueryValueTableCommand{AckNak: %t, DeviceType: %s}",
		c.AckNak(), c.DeviceType())
}

const (
	valueTableIndex = 10
	valueTableRows  = 7
)

// QueryValueTableReply carries one BaseDenomination row per standard
// denomination, zero rows for unassigned slots.
type QueryValueTableReply struct {
	extReply
}

func NewQueryValueTableReply() *QueryValueTableReply {
	return &QueryValueTableReply{newExtReply(
		queryValueTableReplyLen, QueryValueTableExt)}
}

// Denom returns the value table row for denomination i in 1..7.
func (r *QueryValueTableReply) Denom(i int) BaseDenomination {
	if i < 1 || i > valueTableRows {
		panic(fmt.Sprintf("invalid denomination: %d", i))
	}
	off := valueTableIndex + (i-1)*baseDenominationLen
	return parseBaseDenomination(r.buf[off : off+baseDenominationLen])
}

func (r *QueryValueTableReply) SetDenom(i int, d BaseDenomination) {
	if i < 1 || i > valueTableRows {
		panic(fmt.Sprintf("invalid denomination: %d", i))
	}
	off := valueTableIndex + (i-1)*baseDenominationLen
	r.buf[off+denomIndexOff] = byte(d.NoteIndex)
	copy(r.buf[off+denomISOOff:off+denomISOOff+3], d.ISOCode[:])
	base := d.BaseValue.Bytes()
	copy(r.buf[off+denomBaseOff:off+denomBaseOff+baseValueLen], base[:])
	r.buf[off+denomSignOff] = byte(d.Sign)
	exp := d.Exponent.Bytes()
	copy(r.buf[off+denomExponentOff:off+denomExponentOff+exponentLen], exp[:])
	r.SetChecksum()
}

// Denoms returns all seven rows, unassigned slots included.
func (r *QueryValueTableReply) Denoms() [valueTableRows]BaseDenomination {
	var t [valueTableRows]BaseDenomination
	for i := range t {
		t[i] = r.Denom(i + 1)
	}
	return t
}

func (r *QueryValueTableReply) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "QueryValueTableReply{AckNak: %t, DeviceType: %s",
		r.AckNak(), r.DeviceType())
	for i := 1; i <= valueTableRows; i++ {
		d := r.Denom(i)
		if d.NoteIndex == 0 {
			continue
		}
		fmt.Fprintf(&sb, ", %d: %s", i, d)
	}
	sb.WriteByte('}')
	return sb.String()
}
