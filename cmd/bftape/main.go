// bftape is a graphical debugger for compiled programs: it animates the
// tape while the VM runs, with the head highlighted and the program output
// below.
//
//	bftape <program.bf | source.bfm>
//
// Space pauses, N single-steps while paused, the up and down arrows change
// the execution speed.
package main

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/KrokodileGlue/bfm/pkg/bf"
	"github.com/KrokodileGlue/bfm/pkg/bfm"
)

const (
	screenWidth  = 960
	screenHeight = 360

	cellSize    = 28
	cellGap     = 2
	tapeY       = 80
	visibleRows = 4
)

var (
	colorCell   = color.RGBA{0x30, 0x30, 0x40, 0xff}
	colorLive   = color.RGBA{0x3a, 0x5a, 0x3a, 0xff}
	colorHead   = color.RGBA{0xc0, 0x60, 0x20, 0xff}
	colorText   = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	colorOutput = color.RGBA{0x80, 0xc0, 0x80, 0xff}
)

// Game steps the VM and draws the tape.
type Game struct {
	vm      *bf.VM
	face    text.Face
	speed   int // commands per frame
	paused  bool
	stopped bool
	err     error
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && g.speed < 100000 {
		g.speed *= 10
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && g.speed > 1 {
		g.speed /= 10
	}

	steps := g.speed
	if g.paused {
		steps = 0
		if inpututil.IsKeyJustPressed(ebiten.KeyN) {
			steps = 1
		}
	}
	for i := 0; i < steps && !g.stopped; i++ {
		cont, err := g.vm.Step()
		if err != nil {
			g.err = err
			g.stopped = true
		}
		if !cont {
			g.stopped = true
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	cols := screenWidth / (cellSize + cellGap)
	tape := g.vm.Tape()
	head := g.vm.Head()

	// keep the head inside the visible block of rows
	first := 0
	total := cols * visibleRows
	if head >= total {
		first = (head/cols - visibleRows + 1) * cols
	}

	for row := 0; row < visibleRows; row++ {
		for col := 0; col < cols; col++ {
			cell := first + row*cols + col
			if cell >= len(tape) {
				break
			}
			x := float32(col * (cellSize + cellGap))
			y := float32(tapeY + row*(cellSize+cellGap))

			clr := colorCell
			if tape[cell] != 0 {
				clr = colorLive
			}
			if cell == head {
				clr = colorHead
			}
			vector.DrawFilledRect(screen, x, y, cellSize, cellSize, clr, false)

			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(x)+3, float64(y)+8)
			op.ColorScale.ScaleWithColor(colorText)
			text.Draw(screen, fmt.Sprintf("%d", tape[cell]), g.face, op)
		}
	}

	status := fmt.Sprintf("pc=%d head=%d steps=%d speed=%d/frame", g.vm.PC(), head, g.vm.Steps(), g.speed)
	if g.paused {
		status += "  [paused: N steps]"
	}
	if g.stopped {
		status += "  [halted]"
	}
	if g.err != nil {
		status += "  error: " + g.err.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 4, 4)
	ebitenutil.DebugPrintAt(screen, "space: pause   up/down: speed", 4, 20)

	out := g.vm.Output()
	if len(out) > 120 {
		out = out[len(out)-120:]
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(4, float64(tapeY+visibleRows*(cellSize+cellGap)+24))
	op.ColorScale.ScaleWithColor(colorOutput)
	text.Draw(screen, "output: "+strings.Map(printableRune, string(out)), g.face, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// printableRune keeps the output line on one line.
func printableRune(r rune) rune {
	if r < 32 || r > 126 {
		return '.'
	}
	return r
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: bftape <program.bf | source.bfm>")
		os.Exit(1)
	}

	path := os.Args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	program := data
	if strings.HasSuffix(path, ".bfm") {
		c := bfm.NewCompiler(string(data))
		program, err = c.Compile()
		c.Diagnostics().Render(os.Stderr, path, string(data), false)
		if err != nil {
			os.Exit(1)
		}
	}

	vm := bf.NewVM(program)
	vm.SetInput(os.Stdin)

	game := &Game{
		vm:    vm,
		face:  text.NewGoXFace(basicfont.Face7x13),
		speed: 10,
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("bftape - " + path)
	if err := ebiten.RunGame(game); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
