package main

import (
	"flag"
	"fmt"
	"os"

	tty "github.com/mattn/go-tty"
	"golang.org/x/term"

	"dsio/hardware/nds"
	"dsio/lib/trust"
	"dsio/tools/regmon"
)

var script = flag.String("e", "", "run this lua script and exit")
var verbose = flag.Bool("v", false, "trace every bus access")
var core = flag.String("core", "arm9", "core to start on: arm9 or arm7")

func main() {
	flag.Parse()
	log := trust.Default("regmon: ")
	if *verbose {
		log.SetLevel(trust.LevelDebug)
	}
	c, err := nds.ParseCore(*core)
	if err != nil {
		log.Fatalf(2, "%v", err)
	}

	if *script != "" {
		m := regmon.New(os.Stdout, log, *verbose)
		m.SetCore(c)
		if err := m.RunFile(*script); err != nil {
			log.Fatalf(1, "%v", err)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		m := regmon.New(os.Stdout, log, *verbose)
		m.SetCore(c)
		if err := m.Serve(regmon.Lines(os.Stdin), false); err != nil {
			log.Fatalf(1, "%v", err)
		}
		return
	}

	t, err := tty.Open()
	if err != nil {
		log.Fatalf(1, "unable to open terminal: %v", err)
	}
	defer t.Close()
	m := regmon.New(t.Output(), log, *verbose)
	m.SetCore(c)
	fmt.Fprintln(t.Output(), "dsio register monitor, type help for commands")
	if err := m.Serve(t, true); err != nil {
		log.Errorf("%v", err)
	}
}
