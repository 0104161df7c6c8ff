package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"
	"unicode"

	"craftwire/frame"
	"craftwire/geom"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/spatial/r2"
)

const title = "Craftwire"

var (
	vertexShaderSource = `
		#version 410
		in vec2 vp;
		uniform mat4 proj;
		uniform float pointSize;
		void main() {
			gl_Position = proj * vec4(vp, 0.0, 1.0);
			gl_PointSize = pointSize;
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		uniform vec4 colour;
		out vec4 frag_colour;
		void main() {
			frag_colour = colour;
		}
	` + "\x00"
)

// batch is one draw call: a primitive mode, a colour and 2D vertices.
type batch struct {
	mode   uint32
	colour mgl32.Vec4
	verts  []float32
}

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
	params := frame.Params{ShowAxes: *axes}

	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(frame.CanvasSize, frame.CanvasSize, title, nil, nil)
	if err != nil {
		log.Fatalln("failed to create window:", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatalln("failed to initialize gl:", err)
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))
	log.Println(frame.Help)

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		log.Fatalln(err)
	}
	gl.UseProgram(program)

	projUniform := gl.GetUniformLocation(program, gl.Str("proj\x00"))
	colourUniform := gl.GetUniformLocation(program, gl.Str("colour\x00"))
	pointSizeUniform := gl.GetUniformLocation(program, gl.Str("pointSize\x00"))

	// Pixel coordinates with the origin top-left, as the frame produces them.
	proj := mgl32.Ortho2D(0, frame.CanvasSize, frame.CanvasSize, 0)
	gl.UniformMatrix4fv(projUniform, 1, false, &proj[0])
	gl.Uniform1f(pointSizeUniform, frame.MarkerSize)

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	vertAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(1, 1, 1, 1)

	dirty := true
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
			return
		case glfw.KeyTab:
			log.Println("shape:", sel.Next())
		case glfw.KeyUp:
			params.Step(frame.RotateXUp)
		case glfw.KeyDown:
			params.Step(frame.RotateXDown)
		case glfw.KeyRight:
			params.Step(frame.RotateYUp)
		case glfw.KeyLeft:
			params.Step(frame.RotateYDown)
		default:
			a, ok := frame.KeyAction(unicode.ToLower(rune(key)))
			if !ok {
				return
			}
			params.Step(a)
		}
		dirty = true
	})

	var batches []batch
	for !window.ShouldClose() {
		if dirty {
			f, err := sel.Frame(params, cfg)
			if err != nil {
				log.Fatalln(err)
			}
			if n := f.NumHidden(); n > 0 {
				log.Printf("%d vertices in the camera plane are not drawn", n)
			}
			for i, c := range f.Display() {
				log.Printf("%s %d %s", f.Shape, i, c)
			}
			window.SetTitle(fmt.Sprintf("%s | %s | X %g° Y %g° Z %g°", title, f.Shape, params.RotateX, params.RotateY, params.RotateZ))
			batches = frameBatches(f)
			dirty = false
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.UseProgram(program)
		gl.BindVertexArray(vao)
		for _, b := range batches {
			if len(b.verts) == 0 {
				continue
			}
			gl.BufferData(gl.ARRAY_BUFFER, len(b.verts)*4, gl.Ptr(b.verts), gl.DYNAMIC_DRAW)
			gl.Uniform4fv(colourUniform, 1, &b.colour[0])
			gl.DrawArrays(b.mode, 0, int32(len(b.verts)/2))
		}

		window.SwapBuffers()
		glfw.WaitEvents()
	}
}

// frameBatches lays out f as GL draw calls: each axis in its colour, then
// the shape's vertex markers and edges in black.
func frameBatches(f frame.Frame) []batch {
	const half = frame.MarkerSize / 2
	put := func(dst []float32, p r2.Vec) []float32 {
		return append(dst, float32(p.X+half), float32(p.Y+half))
	}

	var out []batch
	for _, a := range f.Axes {
		if a.Hidden {
			continue
		}
		c := mgl32.Vec4{float32(a.Color.R) / 255, float32(a.Color.G) / 255, float32(a.Color.B) / 255, 1}
		line := put(put(nil, a.Screen[0]), a.Screen[1])
		out = append(out, batch{gl.LINES, c, line}, batch{gl.POINTS, c, line})
	}

	black := mgl32.Vec4{0, 0, 0, 1}
	var points, lines []float32
	for i, p := range f.Screen {
		if !f.IsHidden(i) {
			points = put(points, p)
		}
	}
	for _, e := range f.DrawableEdges() {
		lines = put(put(lines, f.Screen[e[0]]), f.Screen[e[1]])
	}
	return append(out, batch{gl.POINTS, black, points}, batch{gl.LINES, black, lines})
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(msg))

		return 0, fmt.Errorf("failed to link program: %v", msg)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(msg))

		return 0, fmt.Errorf("failed to compile shader: %v", msg)
	}

	return shader, nil
}
