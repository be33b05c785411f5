/*
slabgen
-------
Generate CeO2 (ceria) surface slabs, optionally with a water molecule
adsorbed on top, and write them as VASP POSCAR or XYZ input.
*/
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"slabgen/ceria"
	"slabgen/format"
)

const VERSION = "1.0.0"

func errExit(err error, msg string) {
	fmt.Fprintf(os.Stderr, "slabgen: %v %s\n", err, msg)
	os.Exit(1)
}

func main() {
	args := ParseFlags()
	if len(args) < 1 {
		log.Fatal("slabgen: no input file supplied")
	}
	ParseInfile(args[0])
	if *dump {
		fmt.Fprint(os.Stderr, Conf)
	}
	slab, err := ceria.Slab(ceria.Options{
		CellParam:   Conf.Float(CellParam),
		Vacuum:      Conf.Float(Vacuum),
		Layers:      Conf.Int(Layers),
		Repetitions: Conf.Triple(Repeat),
		Indices:     Conf.Triple(Indices),
		Water:       Conf.Str(Water),
	})
	if err != nil {
		errExit(err, "building slab")
	}
	var w io.Writer = os.Stdout
	if name := Conf.Str(OutFile); name != "" {
		if _, err := os.Stat(name); !os.IsNotExist(err) && !*overwrite {
			log.Fatalf("slabgen: output file %q already exists, overwrite with -o\n", name)
		}
		f, err := os.Create(name)
		if err != nil {
			errExit(err, "creating output file")
		}
		defer f.Close()
		w = f
	}
	switch Conf.Str(OutFormat) {
	case "xyz":
		err = format.WriteXYZ(w, slab, "")
	default:
		err = format.WritePOSCAR(w, slab, "")
	}
	if err != nil {
		errExit(err, "writing output")
	}
	fmt.Fprintf(os.Stderr, "slabgen: wrote %d atoms (%s)\n", slab.Len(), slab.Formula())
}
