package ebds

import (
	"fmt"

	"github.com/albenik/go-serial/v2"
)

// Parity for the serial link. The zero value is even parity, the EBDS
// standard framing.
type Parity byte

const (
	EvenParity Parity = iota
	OddParity
	NoParity
)

func (p Parity) serial() serial.Parity {
	switch p {
	case OddParity:
		return serial.OddParity
	case NoParity:
		return serial.NoParity
	default:
		return serial.EvenParity
	}
}

func (p Parity) IsValid() bool {
	switch p {
	case EvenParity, OddParity, NoParity:
		return true
	default:
		return false
	}
}

func (p Parity) String() string {
	switch p {
	case EvenParity:
		return "EVEN"
	case OddParity:
		return "ODD"
	case NoParity:
		return "NONE"
	default:
		return fmt.Sprintf("ERR:%d", p)
	}
}

func (p Parity) MarshalText() ([]byte, error) {
	if p.IsValid() {
		return []byte(p.String()), nil
	} else {
		return nil, fmt.Errorf("Invalid Parity: %d", p)
	}
}

func (p *Parity) UnmarshalText(b []byte) error {
	switch string(b) {
	case "EVEN":
		*p = EvenParity
	case "ODD":
		*p = OddParity
	case "NONE":
		*p = NoParity
	default:
		return fmt.Errorf("Invalid Parity from %q", b)
	}
	return nil
}
