package ebds

import (
	"io"
	"time"

	"github.com/albenik/go-serial/v2"
)

// EBDS links run 9600 baud, 7 data bits, even parity, 1 stop bit.
const (
	SERIAL_TIMEOUT = 30 * time.Millisecond
	SERIAL_WAIT    = 30 * time.Millisecond
	BAUDRATE       = 9600
	DATABITS       = 7
)

type OpenErr struct {
	Dev string
	Err error
}

func (e OpenErr) Error() string {
	return e.Err.Error() + " while opening " + e.Dev
}

func (e OpenErr) Unwrap() error {
	return e.Err
}

type SerialPort struct {
	Dev      string
	Timeout  time.Duration
	Wait     time.Duration
	Baudrate int
	Parity   Parity
}

func (p *SerialPort) Open(
	repeat bool,
) (io.ReadWriteCloser, time.Duration, error) {
	if p.Dev == "" {
		panic("empty SerialPort.Dev")
	}
	if p.Timeout <= 0 {
		p.Timeout = SERIAL_TIMEOUT
	}
	if p.Wait <= 0 {
		p.Wait = SERIAL_WAIT
	}
	if p.Baudrate <= 0 {
		p.Baudrate = BAUDRATE
	}

	if repeat {
		debugLog("Opening %s", p.Dev)
	} else {
		log("Opening %s", p.Dev)
	}
	port, err := serial.Open(p.Dev,
		serial.WithBaudrate(p.Baudrate),
		serial.WithDataBits(DATABITS),
		serial.WithParity(p.Parity.serial()),
		serial.WithReadTimeout(int(p.Timeout.Milliseconds())),
		serial.WithWriteTimeout(int(p.Timeout.Milliseconds())))
	if err != nil {
		return nil, p.Wait, OpenErr{p.Dev, err}
	}
	log("%s opened", p.Dev)
	return port, p.Wait, nil
}
