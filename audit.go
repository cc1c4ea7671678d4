package ebds

import "fmt"

// ClearAuditDataRequest asks the device to erase its audit counters.
// The device first acknowledges the request, then reports the result
// once the erase finishes.
type ClearAuditDataRequest struct {
	extCommand
}

func NewClearAuditDataRequest() *ClearAuditDataRequest {
	return &ClearAuditDataRequest{newExtCommand(
		clearAuditDataRequestLen, ClearAuditDataExt)}
}

func (c *ClearAuditDataRequest) String() string {
	return fmt.Sprintf(
		"ClearAuditDataRequest{AckNak: %t, DeviceType: %s}",
		c.AckNak(), c.DeviceType())
}

const auditResultIndex = 10

// ClearAuditDataRequestAck reports whether the device accepted the
// request: 0x01 accepted, 0x00 refused.
type ClearAuditDataRequestAck struct {
	extReply
}

func NewClearAuditDataRequestAck() *ClearAuditDataRequestAck {
	return &ClearAuditDataRequestAck{newExtReply(
		clearAuditDataRequestAckLen, ClearAuditDataExt)}
}

func (r *ClearAuditDataRequestAck) Accepted() bool {
	return r.buf[auditResultIndex]&0b1 != 0
}

func (r *ClearAuditDataRequestAck) SetAccepted(v bool) {
	if v {
		r.put(auditResultIndex, 0x01)
	} else {
		r.put(auditResultIndex, 0x00)
	}
}

func (r *ClearAuditDataRequestAck) String() string {
	return fmt.Sprintf(
		"ClearAuditDataRequestAck{AckNak: %t, DeviceType: %s, "+
			"Accepted: %t}",
		r.AckNak(), r.DeviceType(), r.Accepted())
}

// ClearAuditDataRequestResults reports whether the erase succeeded:
// 0x11 passed, 0x10 failed.
type ClearAuditDataRequestResults struct {
	extReply
}

func NewClearAuditDataRequestResults() *ClearAuditDataRequestResults {
	r := &ClearAuditDataRequestResults{newExtReply(
		clearAuditDataRequestResultsLen, ClearAuditDataExt)}
	r.put(auditResultIndex, 0x10)
	return r
}

func (r *ClearAuditDataRequestResults) Passed() bool {
	return r.buf[auditResultIndex]&0b1 != 0
}

func (r *ClearAuditDataRequestResults) SetPassed(v bool) {
	if v {
		r.put(auditResultIndex, 0x11)
	} else {
		r.put(auditResultIndex, 0x10)
	}
}

func (r *ClearAuditDataRequestResults) String() string {
	return fmt.Sprintf(
		"ClearAuditDataRequestResults{AckNak: %t, DeviceType: %s, "+
			"Passed: %t}",
		r.AckNak(), r.DeviceType(), r.Passed())
}
