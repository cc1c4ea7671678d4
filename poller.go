package ebds

import (
	"io"
	"time"

	"github.com/bangzek/clock"
)

const (
	TIMEOUT = time.Second
)

var (
	ctime = clock.New()
)

// SetClock swaps the deadline clock. For tests.
func SetClock(c clock.Clock) {
	ctime = c
}

type PortOpener interface {
	Open(bool) (io.ReadWriteCloser, time.Duration, error)
}

// Poller drives the host side of the serial link: it opens the port on
// demand, stamps the ACK number on each outgoing message, and reads back
// one reply frame sized by its LEN byte.
//
// The ACK number only advances after a reply echoes it. A mismatched echo
// means the device re-sent its previous reply; re-Send the message and it
// goes out with the same ACK number, which is the retry the device expects.
type Poller struct {
	Port    PortOpener
	Timeout time.Duration

	port   io.ReadWriteCloser
	wait   time.Duration
	repeat bool
	ack    bool
}

func (p *Poller) Close() {
	if p.port != nil {
		p.port.Close()
		p.port = nil
	}
}

func (p *Poller) Send(m Message) (Reply, error) {
	if p.Timeout <= 0 {
		p.Timeout = TIMEOUT
	}
	if p.port == nil {
		var err error
		p.port, p.wait, err = p.Port.Open(p.repeat)
		if err != nil {
			p.repeat = true
			return nil, err
		}
		p.repeat = false
	}

	m.SetAckNak(p.ack)
	tx := m.Bytes()
	debugLog("tx: % X", tx)
	debugLog("TX: %s", m)
	if n, err := p.port.Write(tx); err != nil {
		p.Close()
		return nil, err
	} else if n != len(tx) {
		p.Close()
		return nil, io.ErrShortWrite
	}

	time.Sleep(p.wait)

	// A device honoring SoftReset drops the line instead of answering.
	if _, ok := m.(*SoftReset); ok {
		return nil, nil
	}

	rx := make([]byte, 0, MAX_MESSAGE)
	for deadline := ctime.Now().Add(p.Timeout); ; {
		if n, ok, err := p.read(&rx); err != nil {
			p.Close()
			return nil, err
		} else if n > 0 {
			debugLog("rx: % X", rx)
			if !ok {
				p.Close()
				return nil, BadRxErr(rx)
			}
			break
		}

		if ctime.Now().After(deadline) {
			p.Close()
			return nil, ErrTimeout
		}
	}

	reply, err := decodeFor(m, rx)
	if err != nil {
		return nil, err
	}
	debugLog("RX: %s", reply)
	if reply.AckNak() != m.AckNak() {
		return nil, BadRxErr(rx)
	}
	p.ack = !p.ack
	return reply, nil
}

func (p *Poller) read(b *[]byte) (int, bool, error) {
	*b = (*b)[:cap(*b)]
	for n := 0; n < len(*b); {
		nn, err := p.port.Read((*b)[n:])
		n += nn
		*b = (*b)[:n]
		if err != nil {
			return n, false, err
		} else if nn == 0 {
			return n, false, nil
		} else if validReply(*b) {
			return n, true, nil
		}
		*b = (*b)[:cap(*b)]
	}
	return len(*b), false, nil
}

// validReply accepts a frame once its LEN byte matches the bytes read and
// the checksum folds clean.
func validReply(b []byte) bool {
	return len(b) >= MIN_MESSAGE &&
		int(b[lenIndex]) == len(b) &&
		checksum(b)
}

// Aux replies do not identify themselves, so the sent message supplies
// the hint; everything else self-describes.
func decodeFor(m Message, rx []byte) (Reply, error) {
	if a, ok := m.(interface{ AuxType() AuxType }); ok {
		return DecodeReplyForAux(rx, a.AuxType())
	}
	return DecodeReply(rx)
}
