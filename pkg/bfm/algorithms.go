package bfm

// The fixed Brainfuck algorithms the code generator instantiates. A
// template mixes raw BF commands with placeholder letters: x, y and z name
// the operand cells of a particular instantiation, and a digit d names the
// scratch cell temp+d. Instantiating a template walks it once: raw commands
// are emitted verbatim, a placeholder emits the head moves from the
// tracked position to the resolved cell.
//
// Raw '<' and '>' inside a template do NOT update the tracked head. Several
// templates (modulus, printv, decimal) contain scan loops whose
// compile-time net movement differs from their run-time movement, so the
// only sound bookkeeping is the one the templates are written for: every
// stretch of raw commands returns the head, at run time, to the cell of the
// placeholder before it. On exit the head sits at the cell named by the
// last placeholder executed.

type algo int

const (
	algoDiv algo = iota
	algoMul
	algoAdd
	algoSub
	algoEqu
	algoMod
	algoGrt
	algoLss
	algoNot
	algoCEqu
	algoAnd
	algoOr
	algoArrayWrite
	algoArrayRead
	algoPrintv
	algoDecim

	numAlgorithms
)

var algorithms = [numAlgorithms]string{
	// division: x = x / y
	algoDiv: "0[-]1[-]2[-]3[-]x[0+x-]0[y[1+2+y-]2[y+2-]1[2+0-[2[-]3+0-]3[0+3-]2[1-[x-1[-]]+2-]1-]x+0]",
	// multiplication: x = x * y
	algoMul: "0[-]1[-]x[1+x-]1[y[x+0+y-]0[y+0-]1-]",
	// addition: x = x + y
	algoAdd: "0[-]y[x+0+y-]0[y+0-]",
	// subtraction: x = x - y
	algoSub: "0[-]y[x-0+y-]0[y+0-]",
	// equalization: x = y
	algoEqu: "0[-]x[-]y[x+0+y-]0[y+0-]",
	// modulus: x = x % y
	algoMod: "0<[-]>0[-]1[-]2[-]3[-]4[-]5[-]x[0+x-]y[1+2+y-]2[y+2-]0[>->+<[>]>[<+>-]<<[<]>-]2[x+2-]x",
	// greater than: x = x > y. Both operands are copied out and walked
	// down together; x is incremented on the pass where y's copy is found
	// empty. That copy then wraps to 255 and is not empty again within
	// the walk, so the result is 1 when x > y and 0 otherwise.
	algoGrt: "0[-]1[-]2[-]3[-]y[0+2+y-]2[y+2-]x[1+x-]1[2+0[2[-]3+0-]3[0+3-]2[x+2-]0-1-]0[-]",
	// less than: x = x < y, the same walk with the operands swapped
	algoLss: "0[-]1[-]2[-]3[-]y[1+2+y-]2[y+2-]x[0+x-]1[2+0[2[-]3+0-]3[0+3-]2[x+2-]0-1-]0[-]",
	// logical not: x = !x
	algoNot: "0[-]x[0+x[-]]+0[x-0-]",
	// conditional equality: x = x == y
	algoCEqu: "0[-]1[-]x[1+x-]+y[1-0+y-]0[y+0-]1[x-1[-]]",
	// logical and: x = x && y
	algoAnd: "0[-]1[-]2[-]x[1+x[-]]y[2+0+y-]0[y+0-]1[2[x+2[-]]1-]2[-]",
	// logical or: x = x || y
	algoOr: "0[-]1[-]x[1+x-]1[x-1[-]]y[1+0+y-]0[y+0-]1[x[-]-1[-]]",
	// array write: x(y) = z, x the array base, y the index, z the value
	algoArrayWrite: "z[-x+x>>>+<<<z]x[-z+x]y[-x+x>+<y]x[-y+x]y[-x+x>>+<<y]x[-y+x]>[>>>[-<<<<+>>>>]<[->+<]<[->+<]<[->+<]>-]>>>[-]<[->+<]<[[-<+>]<<<[->>>>+<<<<]>>-]<<",
	// array read: x = y(z), y the array base, z the index
	algoArrayRead: "z[-y+y>+<z]y[-z+y]z[-y+y>>+<<z]y[-z+y]>[>>>[-<<<<+>>>>]<<[->+<]<[->+<]>-]>>>[-<+<<+>>>]<<<[->>>+<<<]>[[-<+>]>[-<+>]<<<<[->>>>+<<<<]>>-]<<x[-]y>>>[-<<<x+y>>>]<<<",
	// printv: emit the decimal digits of the byte at x
	algoPrintv: "0[-]1[-]2[-]3[-]4[-]5[-]6[-]7[-]x[0+1+x-]1[x+1-]0[>>+>+<<<-]>>>[<<<+>>>-]<<+>[<->[>++++++++++<[->-[>+>>]>[+[-<+>]>+>>]<<<<<]>[-]++++++++[<++++++>-]>[<<+>>-]>[<<+>>-]<<]>]<[->>++++++++[<++++++>-]]<[.[-]<]<",
	// decimal input: read digits up to a newline, accumulating at temp+0,
	// then transfer into x
	algoDecim: "0[-]>[-]+[[-]>[-],[+[-----------[>[-]++++++[<------>-]<--<<[->>++++++++++<<]>>[-<<+>>]<+>]]]<]<0[x+0-]",
}

// A parsed template is a flat step sequence, computed once at start-up so
// the walker below never re-scans template strings.
type stepKind int

const (
	stepEmit stepKind = iota
	stepMove
)

type refKind int

const (
	refX refKind = iota
	refY
	refZ
	refScratch
)

type algoStep struct {
	kind    stepKind
	raw     byte    // stepEmit
	ref     refKind // stepMove
	scratch int     // stepMove with refScratch
}

var algoSteps [numAlgorithms][]algoStep

func isBFCommand(c byte) bool {
	switch c {
	case '<', '>', '+', '-', '[', ']', ',', '.':
		return true
	}
	return false
}

func init() {
	for a, tmpl := range algorithms {
		steps := make([]algoStep, 0, len(tmpl))
		for i := 0; i < len(tmpl); i++ {
			c := tmpl[i]
			switch {
			case isBFCommand(c):
				steps = append(steps, algoStep{kind: stepEmit, raw: c})
			case c == 'x':
				steps = append(steps, algoStep{kind: stepMove, ref: refX})
			case c == 'y':
				steps = append(steps, algoStep{kind: stepMove, ref: refY})
			case c == 'z':
				steps = append(steps, algoStep{kind: stepMove, ref: refZ})
			case c >= '0' && c <= '9':
				steps = append(steps, algoStep{kind: stepMove, ref: refScratch, scratch: int(c - '0')})
			default:
				panic("bad template character")
			}
		}
		algoSteps[a] = steps
	}
}

// emitAlgo instantiates a template against concrete operand cells. Unused
// operands are conventionally passed as -1 and must not appear in the
// template.
func (c *Compiler) emitAlgo(a algo, x, y, z int) {
	for _, s := range algoSteps[a] {
		if s.kind == stepEmit {
			c.emitByte(s.raw)
			continue
		}
		switch s.ref {
		case refX:
			c.movePointerTo(x)
		case refY:
			c.movePointerTo(y)
		case refZ:
			c.movePointerTo(z)
		case refScratch:
			c.movePointerTo(c.temp + s.scratch)
		}
	}
}
