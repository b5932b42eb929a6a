// bfmrepl is an interactive BFM session. Each line is appended to the
// program so far, the whole program is recompiled and run on the VM, and
// the newly produced output is shown. Meta commands:
//
//	help   show the command list
//	list   show the accumulated program
//	bf     show the generated Brainfuck
//	copy   put the generated Brainfuck on the system clipboard
//	reset  start over
//	exit   leave
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KrokodileGlue/bfm/pkg/bf"
	"github.com/KrokodileGlue/bfm/pkg/bfm"
	"github.com/atotto/clipboard"
	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// REPL accumulates statements and replays them after every line.
type REPL struct {
	lines    []string
	lastBF   []byte
	lastOut  []byte
	replayed int // bytes of output already shown
}

func main() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		// piped input: behave like a one-shot compile-and-run
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		r := &REPL{}
		if r.evaluate(string(source)) {
			os.Stdout.Write(r.lastOut)
		}
		return
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "bfm> ",
		HistoryFile:     os.TempDir() + "/.bfmrepl-history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Println("BFM REPL. Statements accumulate; 'help' lists commands.")

	r := &REPL{}
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if r.command(line) {
			continue
		}
		if r.evaluate(line) {
			if len(r.lastOut) > r.replayed {
				os.Stdout.Write(r.lastOut[r.replayed:])
				fmt.Println()
			}
			r.replayed = len(r.lastOut)
			fmt.Printf("(%d bytes of BF)\n", len(r.lastBF))
		}
	}
}

// command handles the meta commands; it reports whether line was one.
func (r *REPL) command(line string) bool {
	switch line {
	case "exit", "quit", "q":
		os.Exit(0)
	case "help", "?":
		fmt.Println("help   show this list")
		fmt.Println("list   show the accumulated program")
		fmt.Println("bf     show the generated Brainfuck")
		fmt.Println("copy   copy the generated Brainfuck to the clipboard")
		fmt.Println("reset  start over")
		fmt.Println("exit   leave")
	case "list":
		for _, l := range r.lines {
			fmt.Println(l)
		}
	case "bf":
		fmt.Println(string(r.lastBF))
	case "copy":
		if err := clipboard.WriteAll(string(r.lastBF)); err != nil {
			fmt.Fprintf(os.Stderr, "clipboard: %v\n", err)
		} else {
			fmt.Printf("copied %d bytes\n", len(r.lastBF))
		}
	case "reset":
		*r = REPL{}
		fmt.Println("program cleared")
	default:
		return false
	}
	return true
}

// evaluate appends line, recompiles the whole program and runs it. On a
// compile error the line is dropped again.
func (r *REPL) evaluate(line string) bool {
	candidate := append(append([]string{}, r.lines...), line)
	source := strings.Join(candidate, "\n")

	c := bfm.NewCompiler(source)
	program, err := c.Compile()
	if err != nil {
		c.Diagnostics().Render(os.Stderr, "<repl>", source, false)
		return false
	}

	vm := bf.NewVM(program)
	vm.SetInput(os.Stdin)
	if err := vm.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "runtime error: %v\n", err)
		return false
	}

	r.lines = candidate
	r.lastBF = program
	r.lastOut = vm.Output()
	return true
}
