package bfm

// Setting a cell to a known byte value. Small values are written in place;
// everything else goes through the precomputed generator table: the snippet
// runs in the scratch region and the result is move-transferred into the
// destination. The table lives in constdata.go.

// bfConstant is one entry of the generator table. The snippet is executed
// with the head at the scratch base; cells is how many cells from the base
// it touches (all zeroed before the run) and end is the offset of the cell
// the value lands in, which is also where the snippet leaves the head.
type bfConstant struct {
	code  string
	cells int
	end   int
}

// Direct +/- runs are shorter than a loop construction out to these bounds.
const (
	directPlusMax  = 15
	directMinusMin = 242
)

// emitConstant sets the given cell to value mod 256.
func (c *Compiler) emitConstant(cell, value int) {
	value = ((value % 256) + 256) % 256

	if value <= directPlusMax {
		c.movePointerTo(cell)
		c.emit("[-]")
		c.emitAdd(value)
		return
	}
	if value >= directMinusMin {
		c.movePointerTo(cell)
		c.emit("[-]")
		c.emitAdd(value - 256)
		return
	}

	entry := bfConstants[value]
	for i := 0; i < entry.cells; i++ {
		c.movePointerTo(c.temp + i)
		c.emit("[-]")
	}
	c.movePointerTo(c.temp)
	c.emit(entry.code)
	// The snippets are straight-line apart from counted loops, so their
	// net movement is static and the head is simply repositioned.
	c.head = c.temp + entry.end

	source := c.head
	c.movePointerTo(cell)
	c.emit("[-]")
	c.movePointerTo(source)
	c.emit("[")
	c.movePointerTo(cell)
	c.emit("+")
	c.movePointerTo(source)
	c.emit("-]")
}
