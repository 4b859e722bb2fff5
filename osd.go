// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/osd/clipboard"
	"github.com/jetsetilly/osd/dynlib"
	"github.com/jetsetilly/osd/environment"
	"github.com/jetsetilly/osd/glproc"
	"github.com/jetsetilly/osd/logger"
	"github.com/jetsetilly/osd/malloc"
	"github.com/jetsetilly/osd/modalflag"
	"github.com/jetsetilly/osd/pe"
	"github.com/jetsetilly/osd/performance"
	"github.com/jetsetilly/osd/preferences"
	"github.com/jetsetilly/osd/prefs"
	"github.com/jetsetilly/osd/process"
	"github.com/jetsetilly/osd/statsview"
	"github.com/jetsetilly/osd/version"
)

// SDL requires that some functions are called from the main thread
func init() {
	runtime.LockOSThread()
}

func main() {
	process.SaveTerminal()

	// #ctrlc
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		fmt.Print("\r")
		process.Terminate()
	}()

	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. returns the exit
// status of the program
func launch(out io.Writer, args []string) int {
	md := &modalflag.Modes{Output: out}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("ENV", "MALLOC", "DYNLIB", "EXPORTS", "CLIPBOARD", "BREAK", "VERSION")

	prefsStack := md.AddString("prefs", "", "preferences for this run, eg. \"malloc.debug::true; malloc.guardalign::start\"")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(out, "* error: %v\n", err)
		return 10
	}

	if *prefsStack != "" {
		prefs.PushCommandLineStack(*prefsStack)
	}

	prf, err := preferences.NewPreferences()
	if err != nil {
		fmt.Fprintf(out, "* error: %v\n", err)
		return 10
	}

	if *prefsStack != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Fprintf(out, "* unknown preferences: %s\n", unused)
		}
	}

	if *log {
		logger.SetEcho(out)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(out)
		} else {
			fmt.Fprintln(out, "* statsview not available in this build")
		}
	}

	err = configure(prf)
	if err != nil {
		fmt.Fprintf(out, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "ENV":
		err = env(md, out)

	case "MALLOC":
		err = alloc(md, out)

	case "DYNLIB":
		err = dyn(md, out)

	case "EXPORTS":
		err = exports(md, out)

	case "CLIPBOARD":
		err = clip(md, out)

	case "BREAK":
		err = debugBreak(md, out)

	case "VERSION":
		fmt.Fprintln(out, version.String())
	}

	if err != nil {
		fmt.Fprintf(out, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// configure the OS layer from the preferences
func configure(prf *preferences.Preferences) error {
	align, ok := malloc.ParseAlign(prf.GuardAlign.String())
	if !ok {
		return fmt.Errorf("unknown guard alignment: %s", prf.GuardAlign.String())
	}
	malloc.Configure(prf.MallocDebug.Get().(bool), align)

	if prf.DynlibRestricted.Get().(bool) {
		dynlib.SetDefaultLoader(dynlib.NewRestrictedLoader())
		clipboard.Default = clipboard.NewReader(clipboard.Unavailable{})
		malloc.Restricted = true
	}

	return nil
}

func env(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("arguments of the form NAME=VALUE set a variable. other arguments are\nvariable names to print")

	overwrite := md.AddBool("overwrite", true, "overwrite variables that are already set")
	importEnv := md.AddBool("import", false, "import the environment of the host")
	dot := md.AddBool("dot", false, "print a graphviz description of the store")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *importEnv {
		for _, e := range os.Environ() {
			if k, v, ok := strings.Cut(e, "="); ok {
				environment.Setenv(k, v, true)
			}
		}
	}

	for _, a := range md.RemainingArgs() {
		if k, v, ok := strings.Cut(a, "="); ok {
			if !environment.Setenv(k, v, *overwrite) {
				return fmt.Errorf("cannot set %s", k)
			}
			continue // for loop
		}

		if v, ok := environment.Getenv(a); ok {
			fmt.Fprintf(out, "%s=%s\n", a, v)
		} else {
			fmt.Fprintf(out, "%s is not set\n", a)
		}
	}

	if len(md.RemainingArgs()) == 0 {
		for _, e := range environment.Environ() {
			fmt.Fprintln(out, e)
		}
	}

	if *dot {
		environment.Visualise(out)
	}

	return nil
}

func alloc(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()

	size := md.AddInt("size", 17, "size of each allocation")
	count := md.AddInt("count", 1000, "number of allocations")
	guarded := md.AddBool("guarded", false, "use guarded allocations")
	profile := md.AddString("profile", "NONE", "run with profiling: CPU, MEM (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	heap := malloc.NewTrackingHeap(malloc.PlatformHeap())
	a := malloc.NewAllocator(malloc.Default.Mode, malloc.Default.Align, heap)

	fmt.Fprintf(out, "mode: %s (align %s, max alignment %d, page size %d)\n", a.Mode, a.Align, malloc.MaxAlignment, malloc.PageSize)

	allocate := a.Alloc
	if *guarded {
		allocate = a.AllocArray
	}

	misaligned := 0
	err = performance.RunProfiler(prf, "malloc", func() error {
		for range *count {
			ptr := allocate(*size)
			if ptr == nil {
				return fmt.Errorf("allocation of %d bytes failed", *size)
			}
			if a.Mode == malloc.Debug && uintptr(ptr)%uintptr(malloc.MaxAlignment) != 0 {
				misaligned++
			}
			b := malloc.Bytes(ptr, *size)
			for i := range b {
				b[i] = byte(i)
			}
			a.Free(ptr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	bytes, outstanding := heap.Outstanding()
	fmt.Fprintf(out, "allocations: %d\n", heap.Allocations())
	fmt.Fprintf(out, "outstanding: %d (%d bytes)\n", outstanding, bytes)
	fmt.Fprintf(out, "misaligned: %d\n", misaligned)

	return nil
}

func dyn(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("first argument is the symbol to resolve. remaining arguments are candidate\nlibraries in order of preference. with -gl the arguments are candidate GL libraries")

	call := md.AddString("call", "", "call symbol as a function taking and returning a double")
	bindGL := md.AddBool("gl", false, "bind the OpenGL entry points")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *bindGL {
		candidates := md.RemainingArgs()
		if len(candidates) == 0 {
			candidates = glproc.Candidates()
		}
		mod := dynlib.Open(candidates)
		defer mod.Close()
		if err := glproc.Init(mod); err != nil {
			return err
		}
		fmt.Fprintf(out, "GL bound from %s\n", mod)
		return nil
	}

	if len(md.RemainingArgs()) < 2 {
		return fmt.Errorf("symbol and at least one library required for %s mode", md)
	}

	mod := dynlib.Open(md.RemainingArgs()[1:])
	defer mod.Close()

	sym := md.GetArg(0)
	addr, ok := mod.Symbol(sym)
	if !ok {
		return fmt.Errorf("%s not found", sym)
	}

	name, _ := mod.Bound()
	fmt.Fprintf(out, "%s: %#x (%s)\n", sym, addr, name)

	if *call != "" {
		x, err := strconv.ParseFloat(*call, 64)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s(%g) = %g\n", sym, x, dynlib.CallFloat64(addr, x))
	}

	return nil
}

func exports(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("PE file required for %s mode", md)
	}

	img, err := pe.Open(md.GetArg(0))
	if err != nil {
		return err
	}

	for _, e := range img.Exports() {
		if e.Forwarder != "" {
			fmt.Fprintf(out, "%5d %s -> %s\n", e.Ordinal, e.Name, e.Forwarder)
		} else {
			fmt.Fprintf(out, "%5d %s %#08x\n", e.Ordinal, e.Name, e.RVA)
		}
	}

	return nil
}

func clip(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// the SDL clipboard requires the video subsystem
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	s, ok := clipboard.Get()
	if !ok {
		fmt.Fprintln(out, "clipboard is empty")
		return nil
	}
	fmt.Fprintln(out, s)

	return nil
}

func debugBreak(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()

	report := md.AddBool("report", true, "report to stderr if no debugger is attached")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *report {
		process.SetCrashReporter(func(message string) {
			fmt.Fprintf(os.Stderr, "* break: %s\n", message)
		})
	}

	msg := strings.Join(md.RemainingArgs(), " ")
	if msg == "" {
		msg = "debug break"
	}

	fmt.Fprintf(out, "debugger attached: %v\n", process.DebuggerPresent())
	process.DebugBreak(msg)

	return nil
}
