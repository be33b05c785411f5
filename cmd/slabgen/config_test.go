package main

import (
	"testing"

	"slabgen/ceria"
)

func TestParseInfile(t *testing.T) {
	defer func(old Config) { Conf = old }(Conf)
	ParseInfile("testfiles/ceria.in")
	if got := Conf.Float(CellParam); got != 5.411 {
		t.Errorf("got %v, wanted 5.411\n", got)
	}
	if got := Conf.Float(Vacuum); got != 8.0 {
		t.Errorf("got %v, wanted 8\n", got)
	}
	if got := Conf.Int(Layers); got != 3 {
		t.Errorf("got %v, wanted 3\n", got)
	}
	if got := Conf.Triple(Repeat); got != [3]int{2, 2, 1} {
		t.Errorf("got %v, wanted [2 2 1]\n", got)
	}
	if got := Conf.Triple(Indices); got != [3]int{1, 1, 0} {
		t.Errorf("got %v, wanted [1 1 0]\n", got)
	}
	if got := Conf.Str(Water); got != ceria.WaterNone {
		t.Errorf("got %q, wanted %q\n", got, ceria.WaterNone)
	}
	if got := Conf.Str(OutFormat); got != "xyz" {
		t.Errorf("got %q, wanted xyz\n", got)
	}
	if got := Conf.Str(OutFile); got != "slab.xyz" {
		t.Errorf("got %q, wanted slab.xyz\n", got)
	}
}

func TestTripleKeyword(t *testing.T) {
	if got := TripleKeyword("1, 1, 0").([3]int); got != [3]int{1, 1, 0} {
		t.Errorf("got %v, wanted [1 1 0]\n", got)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("wanted a panic for a malformed triple\n")
		}
	}()
	TripleKeyword("1,2")
}

func TestWaterKeyword(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("wanted a panic for an unsupported water species\n")
		}
	}()
	Conf[Water].Extract("d")
}
