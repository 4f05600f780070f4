// Package main is a small demonstration of the toolkit: a session
// with a label and an integer textbox, driven by the terminal host.
// It renders nothing; type digits, press Escape to quit, Ctrl+P to
// toggle pause.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/sightless-ui/sightless/config"
	"github.com/sightless-ui/sightless/element"
	"github.com/sightless-ui/sightless/event"
	"github.com/sightless-ui/sightless/host"
	"github.com/sightless-ui/sightless/session"
)

func main() {
	os.Exit(run())
}

func run() int {
	var verbose bool
	var bindingsPath string
	flag.BoolVar(&verbose, "v", false, "Log every dispatched event")
	flag.StringVar(&bindingsPath, "bindings", "", "Path to a TOML or YAML bindings file")
	flag.Parse()

	sess := session.New()
	if verbose {
		logger := logrus.New()
		logger.SetLevel(logrus.DebugLevel)
		if err := sess.SetLogger(logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	label := element.NewLabel(sess, "Amount entry")
	box := element.NewIntTextbox(sess, "Amount")

	// Quit and pause stay live while paused.
	sess.AddKeydownHandler(
		session.Act(session.Do(sess.Quit)),
		event.Filters{event.On(event.FieldKey, event.OneOf(tcell.KeyEscape, tcell.KeyCtrlC))},
		session.WithHelp("Quit the demo."),
		session.WithAlwaysActive(),
	)
	sess.AddKeydownHandler(
		session.Act(session.Do(sess.TogglePause)),
		event.Filters{event.On(event.FieldKey, event.Equals(tcell.KeyCtrlP))},
		session.WithHelp("Toggle pause."),
		session.WithAlwaysActive(),
	)
	sess.AddHandler(event.Quit, session.Act(session.Do(sess.Quit)), nil, session.WithAlwaysActive())

	// Optional user bindings take precedence over the catch-all below.
	if bindingsPath != "" {
		bindings, err := config.Load(bindingsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		actions := config.ActionSet{
			"quit":  session.Do(sess.Quit),
			"pause": session.Do(sess.TogglePause),
		}
		if _, err := config.Apply(sess.Manager, bindings, actions); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	// Catch-all last: everything unclaimed goes to the textbox.
	sess.AddKeydownHandler(
		session.Act(session.ActionFunc(func(_ *session.Handler, ev event.Event) any {
			return box.HandleEvent(ev)
		})),
		nil,
	)

	term, err := host.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}

	runErr := sess.Run(term)
	term.Fini()

	if runErr != nil && !errors.Is(runErr, session.ErrQuit) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		return 1
	}

	fmt.Printf("%s / %s: %s\n", label.Title(), box.Title(), box.Display())
	return 0
}
