package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strings"
	"unicode"

	"craftwire/frame"
	"craftwire/geom"
	"craftwire/raster"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"
)

func main() {
	shape := flag.String("shape", geom.CubeName, "initial shape: "+strings.Join(geom.Names(), ", "))
	axes := flag.Bool("axes", false, "show reference axes")
	cameraZ := flag.Float64("camera-z", frame.DefaultConfig().CameraZ, "camera depth")
	screenZ := flag.Float64("screen-z", frame.DefaultConfig().ScreenZ, "projection plane depth")
	flag.Parse()

	cfg := frame.DefaultConfig()
	cfg.CameraZ, cfg.ScreenZ = *cameraZ, *screenZ
	if err := cfg.Validate(); err != nil {
		log.Fatalln(err)
	}
	sel, err := frame.NewSelector(*shape)
	if err != nil {
		log.Fatalln(err)
	}

	if err := run(sel, frame.Params{ShowAxes: *axes}, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "tui error: %v\n", err)
		os.Exit(1)
	}
}

func run(sel *frame.Selector, params frame.Params, cfg frame.Config) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(s, events, done)

	draw := func() error {
		f, err := sel.Frame(params, cfg)
		if err != nil {
			return err
		}
		s.Clear()
		render(s, f, params)
		s.Show()
		return nil
	}
	if err := draw(); err != nil {
		return err
	}

	// Every key is handled and redrawn before the next one is read.
	for ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyTab:
				sel.Next()
			case tcell.KeyUp:
				params.Step(frame.RotateXUp)
			case tcell.KeyDown:
				params.Step(frame.RotateXDown)
			case tcell.KeyRight:
				params.Step(frame.RotateYUp)
			case tcell.KeyLeft:
				params.Step(frame.RotateYDown)
			case tcell.KeyRune:
				a, ok := frame.KeyAction(unicode.ToLower(ev.Rune()))
				if !ok {
					continue
				}
				params.Step(a)
			default:
				continue
			}
		case *tcell.EventResize:
			s.Sync()
		default:
			continue
		}
		if err := draw(); err != nil {
			return err
		}
	}
	return nil
}

// pollEvents forwards screen events until the screen is finalised or the
// reader stops listening.
func pollEvents(s tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// render scales the canvas onto the terminal, leaving a text column for
// the coordinate readout.
func render(s tcell.Screen, f frame.Frame, p frame.Params) {
	w, h := s.Size()
	const panel = 24
	if w <= panel+10 || h <= 8 {
		drawText(s, 0, 0, tcell.StyleDefault, "terminal too small")
		return
	}
	view := cellMapper{
		x0: panel,
		sx: float64(w-panel-1) / frame.CanvasSize,
		sy: float64(h-2) / frame.CanvasSize,
	}

	for _, a := range f.Axes {
		if a.Hidden {
			continue
		}
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(a.Color.R), int32(a.Color.G), int32(a.Color.B)))
		view.line(s, a.Screen[0], a.Screen[1], '·', style)
	}
	edgeStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for _, e := range f.DrawableEdges() {
		view.line(s, f.Screen[e[0]], f.Screen[e[1]], '·', edgeStyle)
	}
	vertexStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for i, pt := range f.Screen {
		if f.IsHidden(i) {
			continue
		}
		if x, y, ok := view.cell(pt); ok {
			s.SetContent(x, y, '●', nil, vertexStyle)
		}
	}

	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	drawText(s, 1, 0, text, f.Shape)
	drawText(s, 1, 1, text, fmt.Sprintf("X %g° Y %g° Z %g°", p.RotateX, p.RotateY, p.RotateZ))
	for i, c := range f.Display() {
		drawText(s, 1, 3+i, text, c.String())
	}
	if n := f.NumHidden(); n > 0 {
		drawText(s, 1, 4+len(f.World), tcell.StyleDefault.Foreground(tcell.ColorRed), fmt.Sprintf("%d hidden", n))
	}
	drawText(s, 1, h-1, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), frame.Help)
}

type cellMapper struct {
	x0     int
	sx, sy float64
}

func (m cellMapper) cell(p r2.Vec) (x, y int, ok bool) {
	fx, fy := float64(m.x0)+p.X*m.sx, p.Y*m.sy
	if math.Abs(fx) > math.MaxInt32 || math.Abs(fy) > math.MaxInt32 {
		return 0, 0, false
	}
	return int(math.Round(fx)), int(math.Round(fy)), true
}

func (m cellMapper) line(s tcell.Screen, a, b r2.Vec, r rune, style tcell.Style) {
	x1, y1, ok1 := m.cell(a)
	x2, y2, ok2 := m.cell(b)
	if !ok1 || !ok2 {
		return
	}
	w, h := s.Size()
	// Off-screen runs are walked but not drawn; bound them so a nearly
	// degenerate vertex cannot stall the loop.
	if abs(x1) > 4*w || abs(x2) > 4*w || abs(y1) > 4*h || abs(y2) > 4*h {
		return
	}
	raster.Walk(x1, y1, x2, y2, func(x, y int) {
		if x >= m.x0 && x < w && y >= 0 && y < h-1 {
			s.SetContent(x, y, r, nil, style)
		}
	})
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
