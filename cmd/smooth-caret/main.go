// Command smooth-caret is a demo editor showing the animated caret overlay:
// a small editable buffer whose caret glides between positions and breathes
// instead of blinking. F2 drops editor focus to exercise the legality gate.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/smooth-caret/audio"
	"github.com/lixenwraith/smooth-caret/caret"
	"github.com/lixenwraith/smooth-caret/config"
	"github.com/lixenwraith/smooth-caret/engine"
	"github.com/lixenwraith/smooth-caret/terminal"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var (
	configFlag  = flag.String("config", "", "Path to TOML config file")
	logFlag     = flag.String("log", "", "Diagnostics log file (overrides config)")
	noAudioFlag = flag.Bool("no-audio", false, "Disable key click audio")
)

var sampleText = []string{
	"smooth-caret demo",
	"",
	"Type to edit. The caret glides to each new position and fades",
	"in a slow breathing cycle instead of blinking.",
	"",
	"Arrows move, Shift+arrows select, Enter and Backspace edit.",
	"F2 toggles editor focus (the caret hides while unfocused).",
	"Esc or Ctrl+C quits.",
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *logFlag != "" {
		cfg.Log.File = *logFlag
	}
	if *noAudioFlag {
		cfg.Audio.Enabled = false
	}

	logger := newLogger(cfg.Log)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	defer screen.Fini()

	// Panic recovery: restore the terminal before printing anything, or the
	// trace is unreadable in raw mode.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nsmooth-caret crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()

	surface := terminal.NewSurface(sampleText)
	measurer := terminal.NewMeasurer(surface)
	measurer.OriginY = 1 // row 0 is the status bar
	overlay := terminal.NewOverlay(screen)
	pointer := terminal.NewPointer()
	clock := engine.NewLoopClock()

	anim, err := caret.New(caret.Deps{
		Surface:  surface,
		Measurer: measurer,
		Target:   overlay,
		Clock:    clock,
		Pointer:  pointer,
		Log:      logger,
	}, cfg.Caret)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to create animator: %v\n", err)
		os.Exit(1)
	}

	clicker := audio.NewClicker(cfg.Audio.Enabled, cfg.Audio.Volume)
	if err := clicker.Init(); err != nil {
		// Non-fatal, the demo runs without sound.
		logger.Warn().Err(err).Msg("audio initialization failed")
	}
	defer clicker.Close()

	anim.Start()
	defer anim.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !handleEvent(ev, surface, pointer, clicker) {
				return
			}

		case <-ticker.C:
			clock.Fire(time.Now())
			draw(screen, surface)
			overlay.Draw()
			screen.Show()
		}
	}
}

// handleEvent applies one tcell event to the surface. Returns false to quit.
func handleEvent(ev tcell.Event, surface *terminal.Surface, pointer *terminal.Pointer, clicker *audio.Clicker) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		extend := ev.Modifiers()&tcell.ModShift != 0
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyF2:
			surface.SetFocused(!surface.Focused())
		case tcell.KeyUp:
			surface.Move(-1, 0, extend)
		case tcell.KeyDown:
			surface.Move(1, 0, extend)
		case tcell.KeyLeft:
			surface.Move(0, -1, extend)
		case tcell.KeyRight:
			surface.Move(0, 1, extend)
		case tcell.KeyEnter:
			surface.Newline()
			clicker.Click()
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			surface.Backspace()
			clicker.Click()
		case tcell.KeyRune:
			surface.Insert(ev.Rune())
			clicker.Click()
		}

	case *tcell.EventMouse:
		pointer.HandleEvent(ev)
	}
	return true
}

// draw repaints the status bar and buffer text. The overlay paints on top
// afterward.
func draw(screen tcell.Screen, surface *terminal.Surface) {
	screen.Clear()
	width, height := screen.Size()

	status := " smooth-caret  |  F2: focus  |  Esc: quit"
	if !surface.Focused() {
		status = " smooth-caret  |  UNFOCUSED (F2 to restore)"
	}
	statusStyle := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		screen.SetContent(x, 0, r, nil, statusStyle)
	}

	textStyle := tcell.StyleDefault
	for line := 0; line < surface.LineCount() && line+1 < height; line++ {
		x := 0
		for _, r := range surface.Line(line) {
			screen.SetContent(x, line+1, r, nil, textStyle)
			x += runewidth.RuneWidth(r)
		}
	}
}

// newLogger writes diagnostics to the configured file, or discards them.
// Logging to the terminal would corrupt the raw-mode display.
func newLogger(cfg config.Log) zerolog.Logger {
	var w io.Writer = io.Discard
	if cfg.File != "" {
		if f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			w = f
		}
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
