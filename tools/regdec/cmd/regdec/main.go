package main

import (
	"bytes"
	"flag"
	"os"

	"dsio/hardware/nds"
	"dsio/lib/trust"
	"dsio/tools/regdec"
)

var outfile = flag.String("o", "", "output filename")
var dump = flag.Bool("d", false, "dump human readable version (debugging use only)")
var core = flag.String("core", "", "core to generate handles for: arm9 or arm7")
var pkg = flag.String("p", "", "package to emit generated code into (default: the core name)")
var outtags = flag.String("b", "", "output build tags (copied verbatim to output)")
var imp = flag.String("i", regdec.DefaultImport, "package that has the volatile handles")

func main() {
	flag.Parse()
	log := trust.Default("regdec: ")
	if *core == "" {
		log.Fatalf(2, "usage: regdec -core arm9|arm7 [-d] [-p <pkg>] [-b <tags>] [-o <outputfile>]")
	}
	c, err := nds.ParseCore(*core)
	if err != nil {
		log.Fatalf(2, "%v", err)
	}
	if *dump {
		if err := regdec.Dump(os.Stdout, c); err != nil {
			log.Fatalf(1, "%v", err)
		}
		return
	}
	opts := regdec.UserOptions{
		Core:    c,
		Pkg:     *pkg,
		OutTags: *outtags,
		Import:  *imp,
	}
	var output bytes.Buffer
	if err := regdec.Generate(&output, opts); err != nil {
		log.Fatalf(1, "%v", err)
	}
	if *outfile == "" {
		os.Stdout.Write(output.Bytes())
		return
	}
	if err := os.WriteFile(*outfile, output.Bytes(), 0644); err != nil {
		log.Fatalf(1, "unable to write output: %v", err)
	}
	log.Infof("wrote %d %s declarations to %s", len(regdec.Plan(c)), c, *outfile)
}
