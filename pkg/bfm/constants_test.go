package bfm

import (
	"testing"

	"github.com/KrokodileGlue/bfm/pkg/bf"
)

// Every table entry, run on a fresh tape, must produce its value in the
// cell it claims to end in, touch only the span it declares, and leave the
// head there.
func TestConstantTable(t *testing.T) {
	for v, entry := range bfConstants {
		vm := bf.NewVM([]byte(entry.code))
		if err := vm.Run(); err != nil {
			t.Fatalf("Entry %d: runtime error: %v", v, err)
		}
		tape := vm.Tape()
		if int(tape[entry.end]) != v {
			t.Errorf("Entry %d: produced %d at offset %d", v, tape[entry.end], entry.end)
		}
		if vm.Head() != entry.end {
			t.Errorf("Entry %d: head ended at %d, declared %d", v, vm.Head(), entry.end)
		}
		for i := 0; i < entry.cells; i++ {
			if i != entry.end && tape[i] != 0 {
				t.Errorf("Entry %d: scratch offset %d left at %d", v, i, tape[i])
			}
		}
		for i := entry.cells; i < 10; i++ {
			if tape[i] != 0 {
				t.Errorf("Entry %d: touched offset %d beyond its declared span", v, i)
			}
		}
	}
}

func TestConstantTableCharset(t *testing.T) {
	for v, entry := range bfConstants {
		for i := 0; i < len(entry.code); i++ {
			switch entry.code[i] {
			case '+', '-', '<', '>', '[', ']':
			default:
				t.Fatalf("Entry %d contains %q", v, entry.code[i])
			}
		}
	}
}

// The emitter itself: set a user cell to every value and observe it.
func TestEmitConstantAllValues(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := NewCompiler("")
		c.numCells = 1
		c.tempX, c.tempXIndex = 1, 2
		c.tempY, c.tempYIndex = 3, 4
		c.temp = 5
		c.arrayBase = c.temp + numScratchCells

		// dirty the destination first so [-] re-init is exercised
		c.movePointerTo(0)
		c.emitAdd(3)
		c.emitConstant(0, v)

		vm := bf.NewVM(c.out.Bytes())
		if err := vm.Run(); err != nil {
			t.Fatalf("Value %d: runtime error: %v", v, err)
		}
		if int(vm.Tape()[0]) != v {
			t.Errorf("Value %d: cell 0 ended at %d", v, vm.Tape()[0])
		}
		if vm.Head() != c.head {
			t.Errorf("Value %d: virtual head %d, actual %d", v, c.head, vm.Head())
		}
	}
}
