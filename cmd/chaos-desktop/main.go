//go:build !js
// +build !js

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/simukka/psychedelic-chaos/audio"
	"github.com/simukka/psychedelic-chaos/chaos"
	"github.com/simukka/psychedelic-chaos/desktop"
	"github.com/simukka/psychedelic-chaos/logging"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
)

var (
	effectName string
	volume     float64
	mute       bool
	width      int
	height     int
	seed       uint32
	logLevel   string
	fullscreen bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chaos-desktop",
	Short: "Run the psychedelic chaos effects in a native window",
	Long: `chaos-desktop plays the six generative effects with their synthesized
audio outside the browser.

Keys:
  1-6     particles, fractal, matrix, waves, glitch, spiral
  0, Esc  clear
  M       toggle audio
  +/-     volume
  F10     stats

Examples:
  chaos-desktop --effect matrix
  chaos-desktop --effect spiral --volume 60 --seed 42`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runDesktop,
}

func init() {
	rootCmd.Flags().StringVarP(&effectName, "effect", "e", "waves", "Effect to start with (particles, fractal, matrix, waves, glitch, spiral, none)")
	rootCmd.Flags().Float64VarP(&volume, "volume", "v", audio.AudioConfig.MasterVolume*100, "Volume (0-100)")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "Start with audio off")
	rootCmd.Flags().IntVar(&width, "width", 1280, "Window width")
	rootCmd.Flags().IntVar(&height, "height", 720, "Window height")
	rootCmd.Flags().Uint32Var(&seed, "seed", 0, "Random seed (0 picks one from the clock)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, error, none)")
	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "Start fullscreen")
}

func runDesktop(cmd *cobra.Command, args []string) error {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, level)
	chaos.SetLogger(logger)
	chaos.EnableDebug = level == logging.LevelDebug

	effect, err := chaos.ParseEffect(effectName)
	if err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", width, height)
	}
	if seed == 0 {
		seed = uint32(time.Now().UnixNano())
	}

	opts := desktop.Options{
		Width:  width,
		Height: height,
		Seed:   seed,
		Volume: volume,
		Mute:   mute,
	}

	if mixer, err := audio.NewMixer(audio.AudioConfig.SampleRate); err != nil {
		logger.Errorf("%v, running silent", err)
	} else if out, err := desktop.OpenOutput(mixer); err != nil {
		logger.Errorf("audio: %v, running silent", err)
	} else {
		defer out.Close()
		opts.Graph = mixer
	}

	logger.Infof("chaos-desktop %s: seed %d, effect %s", version, seed, effect)

	game := desktop.NewGame(opts)
	if err := game.Start(effect); err != nil {
		return err
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Psychedelic Chaos")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(fullscreen)

	return ebiten.RunGame(game)
}
