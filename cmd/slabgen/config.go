package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"slabgen/ceria"
)

// Key is a type for input keyword indices. To add a new keyword, add a
// Key here and to the String method below, then add its entry to Conf.
type Key int

const (
	CellParam Key = iota
	Vacuum
	Layers
	Repeat
	Indices
	Water
	OutFormat
	OutFile
	NumKeys
)

func (k Key) String() string {
	return []string{
		"CellParam",
		"Vacuum",
		"Layers",
		"Repeat",
		"Indices",
		"Water",
		"OutFormat",
		"OutFile",
	}[k]
}

// Keyword pairs the recognizing pattern for an input line with the
// extractor for its value
type Keyword struct {
	Re      *regexp.Regexp
	Extract func(string) interface{}
	Value   interface{}
}

type Config [NumKeys]Keyword

// At returns the Value of c at k
func (c *Config) At(k Key) interface{} {
	return (*c)[k].Value
}

// Set sets the Value of c at k
func (c *Config) Set(k Key, val interface{}) {
	(*c)[k].Value = val
}

func (c *Config) Str(k Key) string {
	return (*c)[k].Value.(string)
}

func (c *Config) Float(k Key) float64 {
	return (*c)[k].Value.(float64)
}

func (c *Config) Int(k Key) int {
	return (*c)[k].Value.(int)
}

func (c *Config) Triple(k Key) [3]int {
	return (*c)[k].Value.([3]int)
}

func (c Config) String() string {
	var buf strings.Builder
	for i, kw := range c {
		fmt.Fprintf(&buf, "%s: %v\n", Key(i), kw.Value)
	}
	return buf.String()
}

func kwpanic(str string, err error) {
	panic(fmt.Sprintf("%v parsing input line %q\n", err, str))
}

func StringKeyword(str string) interface{} {
	return str
}

func FloatKeyword(str string) interface{} {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		kwpanic(str, err)
	}
	return f
}

func IntKeyword(str string) interface{} {
	v, err := strconv.Atoi(str)
	if err != nil {
		kwpanic(str, err)
	}
	return v
}

// TripleKeyword parses a comma-separated integer triple like 1,1,0
func TripleKeyword(str string) interface{} {
	fields := strings.Split(str, ",")
	if len(fields) != 3 {
		kwpanic(str, fmt.Errorf("wanted 3 comma-separated values, got %d", len(fields)))
	}
	var ret [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			kwpanic(str, err)
		}
		ret[i] = v
	}
	return ret
}

var Conf = Config{
	CellParam: {
		Re:      regexp.MustCompile(`(?i)^cellparam=`),
		Extract: FloatKeyword,
		Value:   ceria.DefaultCellParam,
	},
	Vacuum: {
		Re:      regexp.MustCompile(`(?i)^vacuum=`),
		Extract: FloatKeyword,
		Value:   10.0,
	},
	Layers: {
		Re:      regexp.MustCompile(`(?i)^layers=`),
		Extract: IntKeyword,
		Value:   4,
	},
	Repeat: {
		Re:      regexp.MustCompile(`(?i)^repeat=`),
		Extract: TripleKeyword,
		Value:   [3]int{1, 1, 1},
	},
	Indices: {
		Re:      regexp.MustCompile(`(?i)^indices=`),
		Extract: TripleKeyword,
		Value:   [3]int{1, 1, 1},
	},
	Water: {
		Re: regexp.MustCompile(`(?i)^water=`),
		Extract: func(str string) interface{} {
			switch str {
			case ceria.WaterAssociative, ceria.WaterNone:
			default:
				panic("unsupported option for keyword water")
			}
			return str
		},
		Value: ceria.WaterAssociative,
	},
	OutFormat: {
		Re: regexp.MustCompile(`(?i)^format=`),
		Extract: func(str string) interface{} {
			switch str {
			case "poscar", "xyz":
			default:
				panic("unsupported option for keyword format")
			}
			return str
		},
		Value: "poscar",
	},
	OutFile: {
		Re:      regexp.MustCompile(`(?i)^out=`),
		Extract: StringKeyword,
		Value:   "",
	},
}

// ParseInfile parses the keyword input file specified by filename and
// stores the results in Conf
func ParseInfile(filename string) {
	f, err := os.Open(filename)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		matched := false
		for i := range Conf {
			if Conf[i].Re.MatchString(line) {
				split := strings.SplitN(line, "=", 2)
				Conf[i].Value = Conf[i].Extract(strings.TrimSpace(split[1]))
				matched = true
				break
			}
		}
		if !matched {
			fmt.Fprintf(os.Stderr, "slabgen: skipping unrecognized input line %q\n", line)
		}
	}
}
