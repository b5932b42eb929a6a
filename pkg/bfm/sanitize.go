package bfm

import "bytes"

// Sanitize is the peephole pass over generated Brainfuck. It sums runs of
// '+'/'-' and of '>'/'<' and re-emits the net, and deletes `][...]` regions:
// a loop that immediately follows a loop close can never run, because the
// close left the current cell at zero. Anything that is not a BF command is
// dropped. The rewrite repeats until the length stops shrinking, so it is
// a fixed point and idempotent.
func Sanitize(code []byte) []byte {
	for {
		out := sanitizePass(code)
		if len(out) >= len(code) {
			return out
		}
		code = out
	}
}

func sanitizePass(code []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(code))

	emitRun := func(sum int, pos, neg byte) {
		b := pos
		if sum < 0 {
			b, sum = neg, -sum
		}
		for i := 0; i < sum; i++ {
			out.WriteByte(b)
		}
	}

	i := 0
	for i < len(code) {
		c := code[i]
		switch {
		case c == '+' || c == '-':
			sum := 0
			for i < len(code) && (code[i] == '+' || code[i] == '-') {
				if code[i] == '+' {
					sum++
				} else {
					sum--
				}
				i++
			}
			emitRun(sum, '+', '-')

		case c == '>' || c == '<':
			sum := 0
			for i < len(code) && (code[i] == '>' || code[i] == '<') {
				if code[i] == '>' {
					sum++
				} else {
					sum--
				}
				i++
			}
			emitRun(sum, '>', '<')

		case c == ']' && i+1 < len(code) && code[i+1] == '[':
			// keep the ], skip the dead loop after it
			out.WriteByte(']')
			i += 2
			depth := 1
			for i < len(code) && depth > 0 {
				if code[i] == '[' {
					depth++
				} else if code[i] == ']' {
					depth--
				}
				i++
			}

		case isBFCommand(c):
			out.WriteByte(c)
			i++

		default:
			i++
		}
	}
	return out.Bytes()
}
