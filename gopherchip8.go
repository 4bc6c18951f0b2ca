// This file is part of GopherChip8.
//
// GopherChip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherChip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherChip8.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gopherchip8/cartridgeloader"
	"github.com/jetsetilly/gopherchip8/debugger"
	"github.com/jetsetilly/gopherchip8/debugger/terminal"
	"github.com/jetsetilly/gopherchip8/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopherchip8/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopherchip8/disassembly"
	"github.com/jetsetilly/gopherchip8/logger"
	"github.com/jetsetilly/gopherchip8/modalflag"
	"github.com/jetsetilly/gopherchip8/performance"
	"github.com/jetsetilly/gopherchip8/playmode"
	"github.com/jetsetilly/gopherchip8/statsview"
	"github.com/jetsetilly/gopherchip8/version"
)

// each mode is run directly from the main goroutine. SDL requires window
// creation and event handling to happen on the main thread and the playmode
// service loop relies on that.
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "DEBUG", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "PLAY":
		err = play(md)

	case "DEBUG":
		err = debug(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddFloat64("scale", 0.0, "window scaling")
	freq := md.AddFloat64("freq", 0.0, "cycle frequency of the machine")
	fpsCap := md.AddBool("fpscap", true, "cap machine to its cycle frequency")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP8 cartridge required for %s mode", md)

	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))
		return playmode.Play(&cartload, float32(*scale), float32(*freq), *fpsCap)

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	freq := md.AddFloat64("freq", 0.0, "cycle frequency of the machine")
	profile := md.AddBool("profile", false, "run debugger through cpu profiler")
	stats := md.AddBool("statsview", false, "launch runtime statistics server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Println("! statsview not in this build (build with statsview tag)")
		}
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	dbg, err := debugger.NewDebugger(term, float32(*freq))
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP8 cartridge required for %s mode", md)

	case 1:
		dbgRun := func() error {
			cartload := cartridgeloader.NewLoader(md.GetArg(0))
			return dbg.Start(&cartload)
		}

		// if profile generation has been requested then run the debugger
		// through the profiler
		return performance.RunProfiler(*profile, "debug", dbgRun)

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	verbose := md.AddBool("verbose", false, "include instruction descriptions in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP8 cartridge required for %s mode", md)

	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))

		dsm, err := disassembly.FromCartridge(&cartload)
		if err != nil {
			return err
		}

		if *verbose {
			return dsm.WriteVerbose(md.Output)
		}
		return dsm.Write(md.Output)

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	freq := md.AddFloat64("freq", 0.0, "cycle frequency of the machine")
	uncapped := md.AddBool("uncapped", false, "run as fast as the host allows")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP8 cartridge required for %s mode", md)

	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))
		return performance.Check(md.Output, *profile, &cartload, *duration, float32(*freq), *uncapped)

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, ver)
	if *revision {
		fmt.Fprintf(md.Output, "%s\n", rev)
	}

	return nil
}
