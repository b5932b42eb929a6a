// bfm is the batch compiler: BFM source in, Brainfuck out.
//
//	bfm INPUT_PATH -oOUTPUT_PATH [-v] [-watch] [-trace]
//
// -v lists every diagnostic instead of one per source line. -watch keeps
// running and recompiles whenever the input file changes.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KrokodileGlue/bfm/pkg/bfm"
	"github.com/fsnotify/fsnotify"
)

var (
	verboseFlag = flag.Bool("v", false, "report every diagnostic (no per-line suppression)")
	watchFlag   = flag.Bool("watch", false, "recompile whenever the input file changes")
	traceFlag   = flag.Bool("trace", false, "show compilation trace")
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: bfm INPUT_PATH -oOUTPUT_PATH [options]")
	fmt.Fprintln(os.Stderr, "\nOptions:")
	flag.PrintDefaults()
	os.Exit(1)
}

func main() {
	// the fused -oOUTPUT form predates the flag package; peel it off
	// before flag.Parse sees the arguments
	outputPath := ""
	args := []string{os.Args[0]}
	for _, arg := range os.Args[1:] {
		if strings.HasPrefix(arg, "-o") {
			if outputPath != "" || len(arg) == 2 {
				usage()
			}
			outputPath = arg[2:]
			continue
		}
		args = append(args, arg)
	}
	os.Args = args
	flag.Parse()

	if flag.NArg() != 1 || outputPath == "" {
		usage()
	}
	inputPath := flag.Arg(0)

	if !*watchFlag {
		os.Exit(compileOnce(inputPath, outputPath))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer watcher.Close()

	// watch the directory rather than the file: editors replace files,
	// which drops a plain file watch
	if err := watcher.Add(filepath.Dir(inputPath)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	compileOnce(inputPath, outputPath)
	base := filepath.Base(inputPath)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Fprintf(os.Stderr, "%s changed, recompiling\n", inputPath)
			compileOnce(inputPath, outputPath)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

// compileOnce compiles the file and reports diagnostics. It returns the
// process exit code.
func compileOnce(inputPath, outputPath string) int {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	c := bfm.NewCompiler(string(source), *traceFlag)
	program, cerr := c.Compile()
	c.Diagnostics().Render(os.Stderr, inputPath, string(source), *verboseFlag)
	if cerr != nil {
		return 1
	}

	if err := os.WriteFile(outputPath, program, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
