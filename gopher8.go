// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/gui/termplay"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
)

// exit value for all errors.
const exitError = 10

func init() {
	// SDL functions must be called from the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch returns the value to use as the exit status.
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "TERM", "PERFORMANCE")
	showVersion := md.AddBool("version", false, "show version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitError
	}

	if *showVersion {
		fmt.Fprintln(output, version.Summary())
		return 0
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, output)

	case "TERM":
		err = term(md, output)

	case "PERFORMANCE":
		err = perform(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitError
	}

	return 0
}

// flags common to every mode.
type commonFlags struct {
	prefs     *string
	savePrefs *bool
	log       *bool
	statsview *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		prefs:     md.AddString("prefs", "", "preferences for this run (key::value; key::value)"),
		savePrefs: md.AddBool("saveprefs", false, "save preferences, including those specified with -prefs"),
		log:       md.AddBool("log", false, "echo log to stdout"),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.URL(""))),
	}
}

// romArg returns the ROM filename or the empty string if no ROM has been
// specified. The help message is printed if there is no ROM.
func romArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		fmt.Fprintf(md.Output, "* a ROM file is required for %s mode\n", md)
		md.Help()
		return "", nil
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

// create an interpreter with the ROM attached.
func newInterpreter(output io.Writer, cf commonFlags, romFile string) (*hardware.Interpreter, error) {
	if *cf.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *cf.statsview {
		statsview.Launch(output, "")
	}

	prefs.PushCommandLineStack(*cf.prefs)
	p, err := preferences.NewPreferences()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
	}
	if err != nil {
		return nil, err
	}

	if *cf.savePrefs {
		if err := p.Save(); err != nil {
			return nil, err
		}
	}

	interp, err := hardware.NewInterpreter(p)
	if err != nil {
		return nil, err
	}

	if !knownExtension(romFile) {
		logger.Logf(logger.Allow, "romloader", "unusual file extension for %s", filepath.Base(romFile))
	}

	err = interp.AttachROM(romloader.NewLoader(romFile))
	if err != nil {
		return nil, err
	}

	return interp, nil
}

func knownExtension(filename string) bool {
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, e := range romloader.FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

func play(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cf := addCommonFlags(md)
	scale := md.AddInt("scale", 10, "window scaling")
	fg := md.AddString("fg", sdlplay.DefaultForeground.String(), "colour of lit pixels (hex RRGGBB)")
	bg := md.AddString("bg", sdlplay.DefaultBackground.String(), "colour of unlit pixels (hex RRGGBB)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	romFile, err := romArg(md)
	if err != nil || romFile == "" {
		return err
	}

	fgCol, err := gui.ParseColour(*fg)
	if err != nil {
		return err
	}
	bgCol, err := gui.ParseColour(*bg)
	if err != nil {
		return err
	}

	interp, err := newInterpreter(output, cf, romFile)
	if err != nil {
		return err
	}

	scr, err := sdlplay.NewSdlPlay(interp.ROM().ShortName(), *scale)
	if err != nil {
		return err
	}
	defer scr.Destroy()
	scr.SetColours(fgCol, bgCol)

	return playmode.Play(interp, scr)
}

func term(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cf := addCommonFlags(md)
	hold := md.AddInt("hold", termplay.DefaultHoldFrames, "number of frames a key is held down for")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	romFile, err := romArg(md)
	if err != nil || romFile == "" {
		return err
	}

	// echoing the log would spoil the terminal display. the log is written
	// once the terminal has been restored
	echo := *cf.log
	*cf.log = false

	interp, err := newInterpreter(output, cf, romFile)
	if err != nil {
		return err
	}

	var scr gui.GUI
	tp, err := termplay.NewTermPlay(interp.ROM().ShortName())
	if err != nil {
		return err
	}
	tp.SetHoldFrames(*hold)
	scr = tp

	err = playmode.Play(interp, scr)
	scr.Destroy()

	if echo {
		logger.Write(output)
	}

	return err
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cf := addCommonFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: cpu, mem, all (comma separated)")
	memviz := md.AddBool("memviz", false, "write graphviz file of interpreter state at end of run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	romFile, err := romArg(md)
	if err != nil || romFile == "" {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	interp, err := newInterpreter(output, cf, romFile)
	if err != nil {
		return err
	}

	opts := performance.Options{
		Duration: *duration,
		Profile:  prf,
	}

	if *memviz {
		opts.Memviz = fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", interp.ROM().ShortName()))
	}

	return performance.Check(output, interp, opts)
}
