package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"glshapes/internal/config"
	"glshapes/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

var (
	configPath = flag.String("config", "", "scene file (TOML); empty uses the built-in scene")
	statsOnly  = flag.Bool("stats", false, "print mesh statistics for the scene and exit")
)

func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	scene, err := config.Load(*configPath)
	if err != nil {
		log.Fatalln(err)
	}

	if *statsOnly {
		lines, err := meshStats(scene)
		if err != nil {
			log.Fatalln(err)
		}
		for _, l := range lines {
			fmt.Println(l)
		}
		return
	}

	// GL teardown has to happen on this thread, so a signal only asks the
	// loop to stop and waits for run to return.
	exitC := make(chan struct{}, 1)
	doneC := make(chan struct{}, 1)
	closer.Bind(func() {
		exitC <- struct{}{}
		<-doneC
	})

	err = run(scene, exitC)
	doneC <- struct{}{}
	if err != nil {
		closer.Fatalln(err)
	}
	closer.Close()
}

func run(scene config.Scene, exit <-chan struct{}) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := setupWindow(scene.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	components, err := setupViewer(window, scene)
	if err != nil {
		return err
	}
	defer components.Dispose()

	log.Printf("viewing %d shapes", len(scene.Shapes))

	im := input.NewInputManager()
	v := NewViewer(window, components, im)
	setupInputHandlers(window, v, im)
	v.Run(exit)
	return nil
}
