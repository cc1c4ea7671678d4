package ebds

import "fmt"

// AuxType is the command byte at offset 5 of every Auxiliary command.
// Aux replies do not echo it: the resolver needs the sent command as a
// hint to pick the reply type.
type AuxType byte

const (
	QuerySoftwareCrc           AuxType = 0x00
	QueryBootPartNumber        AuxType = 0x06
	QueryApplicationPartNumber AuxType = 0x07
	QueryVariantName           AuxType = 0x08
	QueryVariantPartNumber     AuxType = 0x09
	QueryDeviceCapabilities    AuxType = 0x0d
	QueryApplicationId         AuxType = 0x0e
	QueryVariantId             AuxType = 0x0f
	SoftResetCmd               AuxType = 0x7f
	ReservedAux                AuxType = 0xff
)

func (t AuxType) IsValid() bool {
	switch t {
	case QuerySoftwareCrc, QueryBootPartNumber, QueryApplicationPartNumber,
		QueryVariantName, QueryVariantPartNumber, QueryDeviceCapabilities,
		QueryApplicationId, QueryVariantId, SoftResetCmd:
		return true
	default:
		return false
	}
}

func (t AuxType) String() string {
	switch t {
	case QuerySoftwareCrc:
		return "QuerySoftwareCrc"
	case QueryBootPartNumber:
		return "QueryBootPartNumber"
	case QueryApplicationPartNumber:
		return "QueryApplicationPartNumber"
	case QueryVariantName:
		return "QueryVariantName"
	case QueryVariantPartNumber:
		return "QueryVariantPartNumber"
	case QueryDeviceCapabilities:
		return "QueryDeviceCapabilities"
	case QueryApplicationId:
		return "QueryApplicationId"
	case QueryVariantId:
		return "QueryVariantId"
	case SoftResetCmd:
		return "SoftReset"
	default:
		return "Reserved"
	}
}

func (t AuxType) MarshalText() ([]byte, error) {
	if t.IsValid() {
		return []byte(t.String()), nil
	} else {
		return nil, fmt.Errorf("Invalid AuxType: 0x%02x", byte(t))
	}
}

func (t *AuxType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "QuerySoftwareCrc":
		*t = QuerySoftwareCrc
	case "QueryBootPartNumber":
		*t = QueryBootPartNumber
	case "QueryApplicationPartNumber":
		*t = QueryApplicationPartNumber
	case "QueryVariantName":
		*t = QueryVariantName
	case "QueryVariantPartNumber":
		*t = QueryVariantPartNumber
	case "QueryDeviceCapabilities":
		*t = QueryDeviceCapabilities
	case "QueryApplicationId":
		*t = QueryApplicationId
	case "QueryVariantId":
		*t = QueryVariantId
	case "SoftReset":
		*t = SoftResetCmd
	default:
		return fmt.Errorf("Invalid AuxType from %q", b)
	}
	return nil
}

const auxTypeIndex = 5

// auxCommand is the shared 8-byte shell of every Auxiliary command:
// two data bytes at offsets 3-4, the command byte at offset 5. Aux
// commands carry no Omnibus fields.
type auxCommand struct {
	nopCommand
}

func newAuxCommand(sub AuxType) auxCommand {
	c := auxCommand{nopCommand{newMessage(auxCommandLen, AuxCommandMsg)}}
	c.put(auxTypeIndex, byte(sub))
	return c
}

func (c *auxCommand) AuxType() AuxType {
	return AuxType(c.buf[auxTypeIndex])
}

func (c *auxCommand) Data() (byte, byte) {
	return c.buf[dataIndex], c.buf[dataIndex+1]
}

func (c *auxCommand) SetData(d0, d1 byte) {
	c.buf[dataIndex] = d0
	c.put(dataIndex+1, d1)
}

type QuerySoftwareCrcCommand struct {
	auxCommand
}

func NewQuerySoftwareCrcCommand() *QuerySoftwareCrcCommand {
	return &QuerySoftwareCrcCommand{newAuxCommand(QuerySoftwareCrc)}
}

type QueryBootPartNumberCommand struct {
	auxCommand
}

func NewQueryBootPartNumberCommand() *QueryBootPartNumberCommand {
	return &QueryBootPartNumberCommand{newAuxCommand(QueryBootPartNumber)}
}

type QueryApplicationPartNumberCommand struct {
	auxCommand
}

func NewQueryApplicationPartNumberCommand() *QueryApplicationPartNumberCommand {
	return &QueryApplicationPartNumberCommand{
		newAuxCommand(QueryApplicationPartNumber),
	}
}

type QueryVariantNameCommand struct {
	auxCommand
}

func NewQueryVariantNameCommand() *QueryVariantNameCommand {
	return &QueryVariantNameCommand{newAuxCommand(QueryVariantName)}
}

type QueryVariantPartNumberCommand struct {
	auxCommand
}

func NewQueryVariantPartNumberCommand() *QueryVariantPartNumberCommand {
	return &QueryVariantPartNumberCommand{newAuxCommand(QueryVariantPartNumber)}
}

type QueryDeviceCapabilitiesCommand struct {
	auxCommand
}

func NewQueryDeviceCapabilitiesCommand() *QueryDeviceCapabilitiesCommand {
	return &QueryDeviceCapabilitiesCommand{
		newAuxCommand(QueryDeviceCapabilities),
	}
}

type QueryApplicationIdCommand struct {
	auxCommand
}

func NewQueryApplicationIdCommand() *QueryApplicationIdCommand {
	return &QueryApplicationIdCommand{newAuxCommand(QueryApplicationId)}
}

type QueryVariantIdCommand struct {
	auxCommand
}

func NewQueryVariantIdCommand() *QueryVariantIdCommand {
	return &QueryVariantIdCommand{newAuxCommand(QueryVariantId)}
}

// SoftReset commands the device to reset. Both data bytes carry 0x7f.
type SoftReset struct {
	auxCommand
}

func NewSoftReset() *SoftReset {
	c := &SoftReset{newAuxCommand(SoftResetCmd)}
	c.SetData(0x7f, 0x7f)
	return c
}
