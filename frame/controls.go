package frame

import "math"

// Action is one step of a front end control.
type Action int

const (
	RotateXUp Action = iota
	RotateXDown
	RotateYUp
	RotateYDown
	RotateZUp
	RotateZDown
	MoveXUp
	MoveXDown
	MoveYUp
	MoveYDown
	MoveZUp
	MoveZDown
	CameraXUp
	CameraXDown
	CameraYUp
	CameraYDown
	ToggleAxes
	Reset
)

// Help describes the letter keys understood by KeyAction. Arrow keys
// rotate about X and Y in every front end.
const Help = "arrows/q/e:rotate a/d/w/s/r/f:move j/l/i/k:camera x:axes 0:reset tab:shape esc:quit"

var keyActions = map[rune]Action{
	'q': RotateZDown,
	'e': RotateZUp,
	'a': MoveXDown,
	'd': MoveXUp,
	'w': MoveYUp,
	's': MoveYDown,
	'r': MoveZUp,
	'f': MoveZDown,
	'j': CameraXDown,
	'l': CameraXUp,
	'i': CameraYDown,
	'k': CameraYUp,
	'x': ToggleAxes,
	'0': Reset,
}

// KeyAction maps a lower-case key to its control action.
func KeyAction(r rune) (Action, bool) {
	a, ok := keyActions[r]
	return a, ok
}

const (
	angleStep  = 5.0
	moveStep   = 10.0
	cameraStep = 10.0
)

// Step applies a to p. Angles stay within [0, 360) the way a slider would
// keep them; offsets are unbounded.
func (p *Params) Step(a Action) {
	switch a {
	case RotateXUp:
		p.RotateX = wrapAngle(p.RotateX + angleStep)
	case RotateXDown:
		p.RotateX = wrapAngle(p.RotateX - angleStep)
	case RotateYUp:
		p.RotateY = wrapAngle(p.RotateY + angleStep)
	case RotateYDown:
		p.RotateY = wrapAngle(p.RotateY - angleStep)
	case RotateZUp:
		p.RotateZ = wrapAngle(p.RotateZ + angleStep)
	case RotateZDown:
		p.RotateZ = wrapAngle(p.RotateZ - angleStep)
	case MoveXUp:
		p.MoveX += moveStep
	case MoveXDown:
		p.MoveX -= moveStep
	case MoveYUp:
		p.MoveY += moveStep
	case MoveYDown:
		p.MoveY -= moveStep
	case MoveZUp:
		p.MoveZ += moveStep
	case MoveZDown:
		p.MoveZ -= moveStep
	case CameraXUp:
		p.CameraX += cameraStep
	case CameraXDown:
		p.CameraX -= cameraStep
	case CameraYUp:
		p.CameraY += cameraStep
	case CameraYDown:
		p.CameraY -= cameraStep
	case ToggleAxes:
		p.ShowAxes = !p.ShowAxes
	case Reset:
		*p = Params{ShowAxes: p.ShowAxes}
	}
}

func wrapAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
