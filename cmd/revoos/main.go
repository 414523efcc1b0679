// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/ezrec/revoos/boot"
	"github.com/ezrec/revoos/system"
	"github.com/ezrec/revoos/translate"
)

var errSizeRange = errors.New(translate.From("size exceeds 32 bits"))

// allocSize converts a reservation size flag to an arena size.
func allocSize(name string, size uint) (value uint32, err error) {
	if uint64(size) > math.MaxUint32 {
		err = fmt.Errorf("-%v %v: %w", name, size, errSizeRange)
		return
	}
	value = uint32(size)
	return
}

func main() {
	var config string
	var verbose bool
	var allocLo uint
	var allocHi uint
	var lang string

	flag.StringVar(&config, "c", "", ".star boot script to use")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.UintVar(&allocLo, "lo", 0, "Bytes to reserve from the bottom of the arena after init")
	flag.UintVar(&allocHi, "hi", 0, "Bytes to reserve from the top of the arena after init")
	flag.StringVar(&lang, "lang", "", "Message language (BCP 47), default from the environment")

	flag.Parse()

	if len(lang) != 0 {
		err := translate.SetLanguage(lang)
		if err != nil {
			log.Fatalf("-lang %v: %v", lang, err)
		}
	}

	sizeLo, err := allocSize("lo", allocLo)
	if err != nil {
		log.Fatal(err)
	}
	sizeHi, err := allocSize("hi", allocHi)
	if err != nil {
		log.Fatal(err)
	}

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	info := boot.DefaultInfo()

	if len(config) != 0 {
		inf, err := os.Open(config)
		if err != nil {
			log.Fatalf("%v: %v", config, err)
		}
		defer inf.Close()

		info, err = boot.Parse(config, inf)
		if err != nil {
			log.Fatalf("%v: %v", config, err)
		}
	}

	sys, err := system.NewSystem(info)
	if err != nil {
		log.Fatal(err)
	}
	sys.Verbose = verbose

	err = sys.Init()
	if err != nil {
		log.Fatal(err)
	}

	arena, err := sys.Arena()
	if err != nil {
		log.Fatal(err)
	}
	arena.Verbose = verbose

	if sizeLo != 0 {
		addr, err := arena.AllocFromLo(sizeLo, boot.ARENA_ALIGN)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("alloc lo: %v\n", addr)
	}

	if sizeHi != 0 {
		addr, err := arena.AllocFromHi(sizeHi, boot.ARENA_ALIGN)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("alloc hi: %v\n", addr)
	}

	fmt.Printf("console: %v (%v)\n", sys.ConsoleType(), sys.ConsoleType().Class())
	fmt.Printf("  stack: %v\n", sys.StackRegion())
	fmt.Printf("  arena: %v\n", arena.Region())
	fmt.Printf("  start: %v\n", sys.StartTime())
	fmt.Printf("    ipl: %v\n", sys.InIPL())
	for name, status := range sys.Sequencer.Subsystems() {
		fmt.Printf("% 10s: %v\n", name, status)
	}
}
