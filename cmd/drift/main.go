package main

import (
	"flag"
	"fmt"
	"os"

	"drift/internal/game"
	"drift/internal/sim"
)

var (
	handlingFlag = flag.String("handling", "", "handling profile (TOML); defaults to $"+sim.HandlingEnv)
	widthFlag    = flag.Int("width", game.WindowWidth, "initial window width")
	heightFlag   = flag.Int("height", game.WindowHeight, "initial window height")
	muteFlag     = flag.Bool("mute", false, "start with sound muted")
)

func main() {
	flag.Parse()
	lg := sim.NewLogger("drift")

	handling, err := sim.ResolveHandling(sim.HandlingPath(*handlingFlag))
	if err != nil {
		fmt.Fprintf(os.Stderr, "handling: %v\n", err)
		os.Exit(2)
	}

	if err := game.RunDesktop(game.Options{
		Handling: handling,
		Width:    *widthFlag,
		Height:   *heightFlag,
		Mute:     *muteFlag,
		Logger:   lg,
	}); err != nil {
		lg.Printf("fatal: %v", err)
		os.Exit(1)
	}
}
