package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/automoto/spriteplay/config"
	"github.com/automoto/spriteplay/scenes"
	"github.com/automoto/spriteplay/sketch"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
)

func main() {
	flag.BoolVar(&config.Debug.DrawColliders, "debug", false, "outline colliders and sensors")
	flag.BoolVar(&config.Debug.ShowFPS, "fps", false, "show the frame rate")
	flag.StringVar(&config.Debug.Profile, "profile", "", "write a cpu or mem profile to the working directory")
	flag.Parse()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	switch config.Debug.Profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile %q, want cpu or mem", config.Debug.Profile)
	}

	host, err := sketch.NewHost(scenes.NewDemo())
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.Canvas.Width, config.Canvas.Height)
	ebiten.SetWindowTitle(config.Canvas.Title)
	ebiten.SetTPS(config.Canvas.FrameRate)
	// a frame without a background keeps the previous one
	ebiten.SetScreenClearedEveryFrame(false)

	return ebiten.RunGame(host)
}
