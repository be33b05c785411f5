package main

import (
	"flag"
	"fmt"
	"os"
)

const help = `Requirements:
- a slabgen input file of key=value lines; # starts a comment
  - cellparam= lattice parameter in angstroms (default 5.429832)
  - vacuum=    vacuum padding on each side of the slab (default 10)
  - layers=    number of CeO2 layers (default 4)
  - repeat=    supercell repetitions as n,n,n (default 1,1,1)
  - indices=   Miller indices of the exposed facet as h,k,l (default 1,1,1)
  - water=     a for associated water on the slab, n for none (default a)
  - format=    poscar or xyz (default poscar)
  - out=       output file; empty writes to stdout
Flags:
`

var (
	dump      = flag.Bool("dump", false, "print the parsed configuration to stderr before building")
	overwrite = flag.Bool("o", false, "overwrite an existing output file")
	version   = flag.Bool("version", false, "print the version and exit")
)

// ParseFlags parses command line flags and returns a slice of the
// remaining arguments
func ParseFlags() []string {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *version {
		fmt.Printf("slabgen version: %s\n", VERSION)
		os.Exit(0)
	}
	return flag.Args()
}
