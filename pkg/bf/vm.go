// Package bf implements a Brainfuck virtual machine: a byte-addressed tape
// with 8-bit wrapping arithmetic and a single data head. The compiler's
// tests, the REPL and the tape debugger all execute generated programs on
// it.
package bf

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// DefaultTapeSize is the initial tape allocation. The tape grows on demand
// up to MaxTapeSize.
const DefaultTapeSize = 30000

// MaxTapeSize bounds tape growth so a runaway program fails instead of
// eating the machine.
const MaxTapeSize = 1 << 22

// DefaultMaxSteps bounds execution; Run returns an error when it is hit.
const DefaultMaxSteps = 500_000_000

// VM is a Brainfuck machine. Non-command bytes in the program (such as the
// compiler's line breaks) are skipped.
type VM struct {
	program []byte
	matches []int // bracket partner per program index, -1 elsewhere

	tape []byte
	head int
	pc   int

	steps    int
	maxSteps int

	in       io.Reader
	out      io.Writer
	captured bytes.Buffer

	running  bool
	prepared bool
	trace    bool
}

// NewVM creates a machine for the given program. Output is captured and
// available from Output unless SetOutput is called; input defaults to an
// empty stream.
func NewVM(program []byte, trace ...bool) *VM {
	traceEnabled := false
	if len(trace) > 0 {
		traceEnabled = trace[0]
	}
	vm := &VM{
		program:  program,
		tape:     make([]byte, DefaultTapeSize),
		maxSteps: DefaultMaxSteps,
		running:  true,
		trace:    traceEnabled,
	}
	vm.out = &vm.captured
	vm.in = bytes.NewReader(nil)
	return vm
}

// SetInput directs ',' reads to r. At end of input ',' stores zero.
func (vm *VM) SetInput(r io.Reader) { vm.in = r }

// SetOutput directs '.' writes to w instead of the internal capture.
func (vm *VM) SetOutput(w io.Writer) { vm.out = w }

// SetMaxSteps overrides the execution bound. Zero means no bound.
func (vm *VM) SetMaxSteps(n int) { vm.maxSteps = n }

// Head returns the data head position.
func (vm *VM) Head() int { return vm.head }

// PC returns the program counter.
func (vm *VM) PC() int { return vm.pc }

// Steps returns how many commands have executed.
func (vm *VM) Steps() int { return vm.steps }

// Running reports whether the machine is still running; it turns false once
// the machine halts.
func (vm *VM) Running() bool { return vm.running }

// Tape returns the live tape. The caller must not hold it across Step.
func (vm *VM) Tape() []byte { return vm.tape }

// Output returns everything written through '.' so far, when output is
// captured internally.
func (vm *VM) Output() []byte { return vm.captured.Bytes() }

// prepare computes the bracket partner table.
func (vm *VM) prepare() error {
	if vm.prepared {
		return nil
	}
	vm.matches = make([]int, len(vm.program))
	var stack []int
	for i, b := range vm.program {
		vm.matches[i] = -1
		switch b {
		case '[':
			stack = append(stack, i)
		case ']':
			if len(stack) == 0 {
				return fmt.Errorf("unmatched ']' at program offset %d", i)
			}
			j := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			vm.matches[i] = j
			vm.matches[j] = i
		}
	}
	if len(stack) > 0 {
		return fmt.Errorf("unmatched '[' at program offset %d", stack[len(stack)-1])
	}
	vm.prepared = true
	return nil
}

// grow extends the tape to cover the head.
func (vm *VM) grow() error {
	if vm.head < len(vm.tape) {
		return nil
	}
	if vm.head >= MaxTapeSize {
		return fmt.Errorf("tape exceeded %d cells", MaxTapeSize)
	}
	size := len(vm.tape) * 2
	for size <= vm.head {
		size *= 2
	}
	tape := make([]byte, size)
	copy(tape, vm.tape)
	vm.tape = tape
	return nil
}

// Step executes one command. It returns false when the machine halts.
func (vm *VM) Step() (bool, error) {
	if err := vm.prepare(); err != nil {
		return false, err
	}
	if !vm.running {
		return false, nil
	}

	// skip anything that is not a command
	for vm.pc < len(vm.program) {
		switch vm.program[vm.pc] {
		case '<', '>', '+', '-', '[', ']', ',', '.':
		default:
			vm.pc++
			continue
		}
		break
	}
	if vm.pc >= len(vm.program) {
		vm.running = false
		return false, nil
	}

	vm.steps++
	if vm.maxSteps > 0 && vm.steps > vm.maxSteps {
		vm.running = false
		return false, fmt.Errorf("execution exceeded %d steps", vm.maxSteps)
	}

	cmd := vm.program[vm.pc]
	if vm.trace {
		fmt.Fprintf(os.Stderr, "vm: pc=%d cmd=%c head=%d cell=%d\n", vm.pc, cmd, vm.head, vm.tape[vm.head])
	}

	switch cmd {
	case '>':
		vm.head++
		if err := vm.grow(); err != nil {
			vm.running = false
			return false, err
		}
	case '<':
		vm.head--
		if vm.head < 0 {
			vm.running = false
			return false, fmt.Errorf("head moved left of cell 0 at program offset %d", vm.pc)
		}
	case '+':
		vm.tape[vm.head]++
	case '-':
		vm.tape[vm.head]--
	case '.':
		if _, err := vm.out.Write([]byte{vm.tape[vm.head]}); err != nil {
			vm.running = false
			return false, err
		}
	case ',':
		var buf [1]byte
		n, _ := vm.in.Read(buf[:])
		if n == 0 {
			buf[0] = 0
		}
		vm.tape[vm.head] = buf[0]
	case '[':
		if vm.tape[vm.head] == 0 {
			vm.pc = vm.matches[vm.pc]
		}
	case ']':
		if vm.tape[vm.head] != 0 {
			vm.pc = vm.matches[vm.pc]
		}
	}
	vm.pc++
	return true, nil
}

// Run executes the program to completion.
func (vm *VM) Run() error {
	for {
		cont, err := vm.Step()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
