package ebds

import (
	"fmt"

	"github.com/sigurn/crc16"
)

var crcTable = crc16.MakeTable(crc16.CRC16_CCITT_FALSE)

// FirmwareImage wraps a raw firmware file for a flash download: it pads
// the image to whole packets, computes the image CRC the device reports
// through QuerySoftwareCrc, and emits the packet stream.
type FirmwareImage struct {
	data       []byte
	packetSize int
}

// NewFirmwareImage copies data and zero-pads it to a multiple of
// packetSize, which must be a supported flash packet payload width.
func NewFirmwareImage(data []byte, packetSize int) *FirmwareImage {
	if packetSize != flashDataPacket && packetSize != flashDataPacket64 {
		panic(fmt.Sprintf("invalid packet size: %d", packetSize))
	}

	n := len(data)
	if rem := n % packetSize; rem != 0 {
		n += packetSize - rem
	}
	img := make([]byte, n)
	copy(img, data)
	return &FirmwareImage{img, packetSize}
}

func (f *FirmwareImage) Len() int {
	return len(f.data)
}

func (f *FirmwareImage) Packets() int {
	return len(f.data) / f.packetSize
}

// Crc is the CRC-16 of the padded image, comparable against the value a
// QuerySoftwareCrcReply carries after the download completes.
func (f *FirmwareImage) Crc() uint16 {
	return crc16.Checksum(f.data, crcTable)
}

func (f *FirmwareImage) Matches(r *QuerySoftwareCrcReply) bool {
	return r.Crc() == f.Crc()
}

// Packet fills m with packet n of the image. The message's payload width
// must match the image's packet size.
func (f *FirmwareImage) Packet(m FlashDownloadMessage, n int) {
	if n < 0 || n >= f.Packets() {
		panic(fmt.Sprintf("invalid packet: %d", n))
	}
	m.SetPacketNumber(uint16(n))
	m.SetData(f.data[n*f.packetSize : (n+1)*f.packetSize])
}
