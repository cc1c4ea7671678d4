package ebds

// Command is the capability every decoded command satisfies: the three
// Omnibus Command data bytes. Aux commands carry none of these fields and
// answer with zero values; the concrete type, not this interface, says
// whether the values are real.
type Command interface {
	Message
	Denomination() StandardDenomination
	OperationalMode() OperationalMode
	Configuration() Configuration

	command()
}

// Reply is the capability every decoded reply satisfies: the six Omnibus
// Reply status bytes. Firmware-download and aux replies have no status
// section; their accessors return zero values and their setters are no-ops.
// Callers must key off the concrete type to know whether the values mean
// anything.
type Reply interface {
	Message
	DeviceState() DeviceState
	DeviceStatus() DeviceStatus
	ExceptionStatus() ExceptionStatus
	MiscDeviceState() MiscDeviceState
	ModelNumber() ModelNumber
	CodeRevision() CodeRevision

	reply()
}

// commandBase carries the Omnibus Command data bytes at a fixed offset:
// 3 for the plain Omnibus Command, 4 for Extended commands (whose subtype
// byte shifts the data section by one).
type commandBase struct {
	message
	data int
}

func (c *commandBase) command() {}

func (c *commandBase) Denomination() StandardDenomination {
	return StandardDenomination(c.buf[c.data] & 0x7f)
}

func (c *commandBase) SetDenomination(d StandardDenomination) {
	c.put(c.data, byte(d&0x7f))
}

func (c *commandBase) OperationalMode() OperationalMode {
	return OperationalMode(c.buf[c.data+1] & 0x7f)
}

func (c *commandBase) SetOperationalMode(m OperationalMode) {
	c.put(c.data+1, byte(m&0x7f))
}

func (c *commandBase) Configuration() Configuration {
	return Configuration(c.buf[c.data+2] & 0x3f)
}

func (c *commandBase) SetConfiguration(cfg Configuration) {
	c.put(c.data+2, byte(cfg&0x3f))
}

// nopCommand satisfies Command for command types without Omnibus data
// bytes (aux commands). Getters return zero values, setters discard.
type nopCommand struct {
	message
}

func (c *nopCommand) command() {}

func (c *nopCommand) Denomination() StandardDenomination   { return 0 }
func (c *nopCommand) SetDenomination(StandardDenomination) {}
func (c *nopCommand) OperationalMode() OperationalMode     { return 0 }
func (c *nopCommand) SetOperationalMode(OperationalMode)   {}
func (c *nopCommand) Configuration() Configuration         { return 0 }
func (c *nopCommand) SetConfiguration(Configuration)       {}

// statusReply carries the Omnibus Reply status bytes at a fixed offset:
// 3 for the plain Omnibus Reply, 4 for Extended replies.
type statusReply struct {
	message
	data int
}

func (r *statusReply) reply() {}

func (r *statusReply) DeviceState() DeviceState {
	return DeviceState(r.buf[r.data] & 0x7f)
}

func (r *statusReply) SetDeviceState(s DeviceState) {
	r.put(r.data, byte(s&0x7f))
}

func (r *statusReply) DeviceStatus() DeviceStatus {
	return DeviceStatus(r.buf[r.data+1] & 0x7f)
}

func (r *statusReply) SetDeviceStatus(s DeviceStatus) {
	r.put(r.data+1, byte(s&0x7f))
}

func (r *statusReply) ExceptionStatus() ExceptionStatus {
	return ExceptionStatus(r.buf[r.data+2] & 0x7f)
}

func (r *statusReply) SetExceptionStatus(s ExceptionStatus) {
	r.put(r.data+2, byte(s&0x7f))
}

func (r *statusReply) MiscDeviceState() MiscDeviceState {
	return MiscDeviceState(r.buf[r.data+3] & 0x7f)
}

func (r *statusReply) SetMiscDeviceState(s MiscDeviceState) {
	r.put(r.data+3, byte(s&0x7f))
}

func (r *statusReply) ModelNumber() ModelNumber {
	return ModelNumber(r.buf[r.data+4] & 0x7f)
}

func (r *statusReply) SetModelNumber(n ModelNumber) {
	r.put(r.data+4, byte(n&0x7f))
}

func (r *statusReply) CodeRevision() CodeRevision {
	return CodeRevision(r.buf[r.data+5] & 0x7f)
}

func (r *statusReply) SetCodeRevision(n CodeRevision) {
	r.put(r.data+5, byte(n&0x7f))
}

// nopReply satisfies Reply for reply types without a status section.
type nopReply struct {
	message
}

func (r *nopReply) reply() {}

func (r *nopReply) DeviceState() DeviceState           { return 0 }
func (r *nopReply) SetDeviceState(DeviceState)         {}
func (r *nopReply) DeviceStatus() DeviceStatus         { return 0 }
func (r *nopReply) SetDeviceStatus(DeviceStatus)       {}
func (r *nopReply) ExceptionStatus() ExceptionStatus   { return 0 }
func (r *nopReply) SetExceptionStatus(ExceptionStatus) {}
func (r *nopReply) MiscDeviceState() MiscDeviceState   { return 0 }
func (r *nopReply) SetMiscDeviceState(MiscDeviceState) {}
func (r *nopReply) ModelNumber() ModelNumber           { return 0 }
func (r *nopReply) SetModelNumber(ModelNumber)         {}
func (r *nopReply) CodeRevision() CodeRevision         { return 0 }
func (r *nopReply) SetCodeRevision(CodeRevision)       {}
