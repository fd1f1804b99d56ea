package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/codemotion"
	"github.com/fwojciec/codemotion/bubbletea"
	"github.com/fwojciec/codemotion/engine"
	"github.com/fwojciec/codemotion/lipgloss"
	"github.com/fwojciec/codemotion/patch"
)

// ErrUsage is returned when the arguments don't select a mode.
var ErrUsage = errors.New("usage: codemotion [flags] OLDFILE NEWFILE, or: git show | codemotion -patch")

// ErrNoTransitions is returned when a patch contains no text file changes.
var ErrNoTransitions = errors.New("no transitions to play")

// App encapsulates the application logic for testing.
type App struct {
	Stdin    io.Reader
	Args     []string // positional arguments: OLDFILE NEWFILE
	Patch    bool     // read a unified diff from stdin instead
	Static   bool     // skip the animation
	Lang     codemotion.Language
	Planner  *engine.Planner
	Player   codemotion.Player
	ReadFile func(name string) ([]byte, error)
}

// Run plans and plays the requested transitions.
func (a *App) Run(ctx context.Context) error {
	if a.Patch {
		return a.runPatch(ctx)
	}
	if len(a.Args) != 2 {
		return ErrUsage
	}

	oldCode, err := a.ReadFile(a.Args[0])
	if err != nil {
		return err
	}
	newCode, err := a.ReadFile(a.Args[1])
	if err != nil {
		return err
	}

	plan := a.Planner.Plan(codemotion.TransitionInput{
		CurrentCode:  string(newCode),
		PreviousCode: string(oldCode),
		HasPrevious:  true,
		Language:     a.Lang,
		Animating:    !a.Static,
	})
	return a.Player.Play(ctx, a.Args[1], plan)
}

func (a *App) runPatch(ctx context.Context) error {
	transitions, err := patch.NewReader().Read(a.Stdin)
	if err != nil {
		return err
	}
	if len(transitions) == 0 {
		return ErrNoTransitions
	}

	plans, err := a.Planner.PlanFiles(ctx, transitions)
	if err != nil {
		return err
	}
	for _, fp := range plans {
		if err := a.Player.Play(ctx, fp.Path, fp.Plan); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	patchMode := flag.Bool("patch", false, "read a unified diff from stdin and replay each file")
	static := flag.Bool("static", false, "show the final state without animating")
	langName := flag.String("lang", "", "language override (markup, script, python, stylesheet, data)")
	flag.Parse()

	lang, ok := codemotion.ParseLanguage(*langName)
	if !ok {
		fmt.Fprintln(os.Stderr, "unknown language:", *langName)
		os.Exit(1)
	}

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := &App{
		Stdin:    os.Stdin,
		Args:     flag.Args(),
		Patch:    *patchMode,
		Static:   *static,
		Lang:     lang,
		Planner:  engine.New(),
		Player:   bubbletea.NewPlayer(lipgloss.DefaultTheme(), *patchMode),
		ReadFile: os.ReadFile,
	}

	if err := app.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
