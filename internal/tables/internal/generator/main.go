/*
Package generator generates the binary tables of package tables.

Two tables are generated, "codepoints.bin" and "bidi.bin". They are derived
from the Unicode Character Database, version 14.0.0, and from a set of
curated data files living next to the generator:

   confusables.txt   translations which cannot be derived from
                     compatibility decompositions, case-sensitive
                     overrides and flags
   scripts.txt       blocks of the writing systems decancer may retain
   similar.txt       groups of ASCII characters which look alike

The UCD files needed are "UnicodeData.txt" and "BidiBrackets.txt". They
are fetched by running download.go in internal/testdata.

Usage

   generator [-trace D|I|E] [-o dir] [-data dir] [-ucd dir]

The generator is designed to be called with go generate from the "tables"
directory.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/npillmayer/decancer/internal/testdata"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func main() {
	tlevel := flag.String("trace", "I", "Trace level")
	outdir := flag.String("o", ".", "Output directory")
	datadir := flag.String("data", filepath.Join("internal", "generator"), "Directory of curated data files")
	ucddir := flag.String("ucd", testdata.UCDDir(), "Directory of UCD files")
	flag.Parse()
	if err := gtrace.CreateTracers(gologadapter.GetAdapter()); err != nil {
		panic(err)
	}
	T().SetTraceLevel(traceLevel(*tlevel))
	T().Infof("Generating decancer tables")
	ucd, err := loadUCD(filepath.Join(*ucddir, "UnicodeData.txt"))
	if err != nil {
		fail(err, 1)
	}
	T().Infof("Read %d UCD items", ucd.Len())
	codepoints, err := generateCodepoints(ucd, *datadir)
	if err != nil {
		fail(err, 1)
	}
	bidi, err := generateBidi(ucd, filepath.Join(*ucddir, "BidiBrackets.txt"))
	if err != nil {
		fail(err, 1)
	}
	if err = os.WriteFile(filepath.Join(*outdir, "codepoints.bin"), codepoints, 0644); err != nil {
		fail(err, 2)
	}
	if err = os.WriteFile(filepath.Join(*outdir, "bidi.bin"), bidi, 0644); err != nil {
		fail(err, 2)
	}
	T().Infof("Wrote codepoints.bin (%d bytes) and bidi.bin (%d bytes)", len(codepoints), len(bidi))
}

func fail(err error, code int) {
	T().Errorf("%v", err)
	os.Exit(code)
}

func traceLevel(l string) tracing.TraceLevel {
	switch l {
	case "D":
		return tracing.LevelDebug
	case "I":
		return tracing.LevelInfo
	case "E":
		return tracing.LevelError
	}
	return tracing.LevelDebug
}
