// Standalone viewer for tuning the starfield without loading a
// snapshot: renders a field on a raw screen until a key is pressed.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"memoa/render"
	"memoa/starfield"
)

var (
	countFlag = flag.Int("count", 600, "particle count")
	speedFlag = flag.Float64("speed", 0.05, "velocity scale per frame")
	depthFlag = flag.Float64("depth", 50, "field radius")
)

func main() {
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	field := starfield.New(starfield.Config{
		Count: *countFlag,
		Depth: *depthFlag,
		Speed: *speedFlag,
		Size:  1,
		Base:  starfield.RGB{R: 210, G: 210, B: 230},
	})
	renderer := render.NewRenderer(screen)

	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			switch ev.(type) {
			case *tcell.EventKey:
				close(quit)
				return
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	yaw := 0.0
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			field.Step()
			yaw += 0.002
			renderer.RenderStarfieldOnly(field, yaw)
		}
	}
}
