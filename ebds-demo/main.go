package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/bangzek/ebds"
)

func main() {
	ebds.InfoLogFunc = log.Printf
	ebds.DebugLogFunc = log.Printf

	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s DEV\n"+
			" e.g.: %s /dev/ttyUSB0\n",
			os.Args[0],
			os.Args[0])
		os.Exit(1)
	}

	p := &ebds.Poller{
		Port: &ebds.SerialPort{
			Dev: os.Args[1],
		},
	}

	identify(p)
	poll(p)
}

func identify(p *ebds.Poller) {
	for _, cmd := range []ebds.Command{
		ebds.NewQueryBootPartNumberCommand(),
		ebds.NewQueryApplicationPartNumberCommand(),
		ebds.NewQueryVariantNameCommand(),
		ebds.NewQueryVariantPartNumberCommand(),
		ebds.NewQueryDeviceCapabilitiesCommand(),
	} {
		reply, err := p.Send(cmd)
		if err != nil {
			log.Fatalf("ERR: %s\n", err)
		}
		log.Printf("%s\n", reply)
	}
}

// poll runs the Omnibus loop: all denominations enabled, escrow mode on,
// stacking or returning based on the escrowed note value.
func poll(p *ebds.Poller) {
	cmd := ebds.NewOmnibusCommand()
	cmd.SetDenomination(ebds.AllDenominations)

	var mode ebds.OperationalMode
	mode.SetEscrowMode(true)
	cmd.SetOperationalMode(mode)

	tick := time.NewTicker(time.Second / 5)
	for {
		<-tick.C
		reply, err := p.Send(cmd)
		if err != nil {
			log.Printf("ERR: %s\n", err)
			continue
		}

		state := reply.DeviceState()
		switch {
		case state.Escrowed():
			note := reply.ExceptionStatus().NoteValue()
			log.Printf("escrowed note %d\n", note)
			if note > 0 {
				mode.SetDocumentStack(true)
			} else {
				mode.SetDocumentReturn(true)
			}
			cmd.SetOperationalMode(mode)
		case state.Stacked():
			log.Printf("stacked\n")
			mode.SetDocumentStack(false)
			mode.SetDocumentReturn(false)
			cmd.SetOperationalMode(mode)
		case state.Returned():
			log.Printf("returned\n")
			mode.SetDocumentStack(false)
			mode.SetDocumentReturn(false)
			cmd.SetOperationalMode(mode)
		}
	}
}
