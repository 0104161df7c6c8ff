package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	"craftwire/frame"
	"craftwire/geom"
	"craftwire/raster"
)

func main() {
	var p frame.Params
	shape := flag.String("shape", geom.CubeName, "shape: "+strings.Join(geom.Names(), ", "))
	out := flag.String("o", "frame.png", "output PNG path")
	labels := flag.Bool("labels", true, "print vertex coordinates on the image")
	cameraZ := flag.Float64("camera-z", frame.DefaultConfig().CameraZ, "camera depth")
	screenZ := flag.Float64("screen-z", frame.DefaultConfig().ScreenZ, "projection plane depth")
	flag.Float64Var(&p.RotateX, "rx", 0, "rotation about X in degrees")
	flag.Float64Var(&p.RotateY, "ry", 0, "rotation about Y in degrees")
	flag.Float64Var(&p.RotateZ, "rz", 0, "rotation about Z in degrees")
	flag.Float64Var(&p.MoveX, "mx", 0, "translation along X")
	flag.Float64Var(&p.MoveY, "my", 0, "translation along Y, positive is up")
	flag.Float64Var(&p.MoveZ, "mz", 0, "translation along Z")
	flag.Float64Var(&p.CameraX, "cx", 0, "camera X")
	flag.Float64Var(&p.CameraY, "cy", 0, "camera Y")
	flag.BoolVar(&p.ShowAxes, "axes", false, "draw reference axes")
	flag.Parse()

	cfg := frame.DefaultConfig()
	cfg.CameraZ, cfg.ScreenZ = *cameraZ, *screenZ

	s, err := geom.Lookup(*shape)
	if err != nil {
		log.Fatalln(err)
	}
	f, err := frame.Assemble(s, p, cfg)
	if err != nil {
		log.Fatalln(err)
	}
	if n := f.NumHidden(); n > 0 {
		log.Printf("%d vertices in the camera plane are not drawn", n)
	}

	img := raster.NewCanvas()
	opt := raster.DefaultOptions()
	opt.Labels = *labels
	raster.Render(img, f, opt)

	if err := writePNG(*out, img); err != nil {
		log.Fatalln(err)
	}
	for i, c := range f.Display() {
		fmt.Printf("%d %s\n", i, c)
	}
}

func writePNG(path string, img image.Image) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(fp, img); err != nil {
		fp.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return fp.Close()
}
