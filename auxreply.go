package ebds

import (
	"fmt"
	"strings"
)

const (
	crcBegin = 3
	crcEnd   = 7
)

// QuerySoftwareCrcReply carries the firmware image CRC, seven-bit
// packed into four bytes. The remaining two data bytes are reserved.
type QuerySoftwareCrcReply struct {
	nopReply
}

func NewQuerySoftwareCrcReply() *QuerySoftwareCrcReply {
	return &QuerySoftwareCrcReply{
		nopReply{newMessage(querySoftwareCrcReplyLen, AuxCommandMsg)},
	}
}

func (r *QuerySoftwareCrcReply) Crc() uint16 {
	return UnpackSeven16(r.buf[crcBegin:crcEnd])
}

func (r *QuerySoftwareCrcReply) SetCrc(crc uint16) {
	b := PackSeven16(crc)
	copy(r.buf[crcBegin:crcEnd], b[:])
	r.SetChecksum()
}

func (r *QuerySoftwareCrcReply) String() string {
	return fmt.Sprintf(
		"QuerySoftwareCrcReply{AckNak: %t, DeviceType: %s, Crc: 0x%04x}",
		r.AckNak(), r.DeviceType(), r.Crc())
}

// QueryVariantNameReply carries the ASCII name of the loaded note
// table, NUL padded to fill the fixed data section.
type QueryVariantNameReply struct {
	nopReply
}

func NewQueryVariantNameReply() *QueryVariantNameReply {
	return &QueryVariantNameReply{
		nopReply{newMessage(queryVariantNameReplyLen, AuxCommandMsg)},
	}
}

func (r *QueryVariantNameReply) VariantName() string {
	name := string(r.buf[dataIndex:r.etxIndex()])
	if i := strings.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	return name
}

func (r *QueryVariantNameReply) SetVariantName(name string) {
	data := r.buf[dataIndex:r.etxIndex()]
	for i := range data {
		data[i] = 0
	}
	copy(data, name)
	r.SetChecksum()
}

func (r *QueryVariantNameReply) String() string {
	return fmt.Sprintf(
		"QueryVariantNameReply{AckNak: %t, DeviceType: %s, "+
			"VariantName: %q}",
		r.AckNak(), r.DeviceType(), r.VariantName())
}
