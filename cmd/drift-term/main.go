package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"drift/internal/sim"
	"drift/internal/term"
)

const (
	logDir      = "logs"
	logFileName = "drift-term.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	handlingFlag = flag.String("handling", "", "handling profile (TOML); defaults to $"+sim.HandlingEnv)
	debugFlag    = flag.Bool("debug", false, "write logs to "+filepath.Join(logDir, logFileName))
	muteFlag     = flag.Bool("mute", false, "start with sound muted")
)

// setupLogging points the standard logger at a file when debug is set and
// discards it otherwise, since stdout belongs to the screen. A log file over
// maxLogSize is rotated aside first.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("drift-term-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}
	lg := sim.NewLoggerTo(log.Writer(), "drift-term")

	handling, err := sim.ResolveHandling(sim.HandlingPath(*handlingFlag))
	if err != nil {
		fmt.Fprintf(os.Stderr, "handling: %v\n", err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal even if the game crashes.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mDRIFT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	g, err := term.NewGame(screen, term.Options{
		Handling: handling,
		Mute:     *muteFlag,
		Logger:   lg,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	g.Run()
	g.Close()
	screen.Fini()
}
