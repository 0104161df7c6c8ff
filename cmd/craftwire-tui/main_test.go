package main

import (
	"testing"
	"time"

	"craftwire/frame"
	"craftwire/geom"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(100, 40)
	return s
}

func TestPollEventsStopsWithoutReader(t *testing.T) {
	s := newSimScreen(t)
	events := make(chan tcell.Event)
	done := make(chan struct{})
	go pollEvents(s, events, done)

	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	// Nobody reads the pending key; the poller must still wind down.
	close(done)
	s.Fini()

	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("event poller did not exit")
		}
	}
}

func TestRenderDrawsVertices(t *testing.T) {
	s := newSimScreen(t)
	defer s.Fini()
	f, err := frame.Assemble(geom.Cube, frame.Params{ShowAxes: true}, frame.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	render(s, f, frame.Params{})

	w, h := s.Size()
	vertices := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r, _, _, _ := s.GetContent(x, y); r == '●' {
				vertices++
			}
		}
	}
	// Terminal cells are coarse, so neighbouring markers may share a cell.
	if vertices == 0 || vertices > geom.Cube.NumVertices() {
		t.Errorf("found %d vertex cells", vertices)
	}
	if r, _, _, _ := s.GetContent(1, 0); r != 'c' {
		t.Errorf("shape name missing, got %q", r)
	}
}
