// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/ezrec/xasm/emulator"
	"github.com/ezrec/xasm/translate"
)

func main() {
	var source string
	var listing bool
	var ticks int
	var lang string
	var verbose bool

	flag.StringVar(&source, "e", "", "Program source text (default: read from stdin)")
	flag.BoolVar(&listing, "l", false, "Print the assembled listing, do not execute")
	flag.IntVar(&ticks, "t", 0, "Maximum instructions to execute (0 for no limit)")
	flag.StringVar(&lang, "lang", "", "Language of diagnostics (default: from locale)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		err := translate.SetLanguage(lang)
		if err != nil {
			log.Fatalf("%v: %v", lang, err)
		}
	}

	if len(source) == 0 {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("stdin: %v", err)
		}
		source = string(text)
	}

	emu := emulator.NewEmulator(os.Stdout)
	emu.Verbose = verbose
	emu.TickLimit = ticks

	err := emu.Assemble(source)
	if err != nil {
		log.Fatal(err)
	}

	if listing {
		os.Stdout.WriteString(emu.Program.String())
		return
	}

	err = emu.Run()
	if err != nil {
		log.Fatal(err)
	}
}
