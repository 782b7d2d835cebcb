package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"hnstories/internal/eventbus"
	"hnstories/internal/session"
	"hnstories/internal/ui"
)

// rootOptions holds global flags for all commands
type rootOptions struct {
	ConfigPath string
	Query      string
	Offline    bool
	Store      string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newRootCommand creates the root command, which runs the TUI
func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "hnstories",
		Short: "Search Hacker News stories from the terminal",
		Long: `hnstories searches Hacker News stories as you type.

The last search term is remembered between runs. Stories can be dismissed
from the list, sorted, and opened in a pager.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/hnstories/config.toml)")
	cmd.PersistentFlags().StringVarP(&opts.Query, "query", "q", "", "search term to start with instead of the stored one")
	cmd.PersistentFlags().BoolVar(&opts.Offline, "offline", false, "serve the sample stories from the config instead of the network")
	cmd.PersistentFlags().StringVar(&opts.Store, "store", "", "where to keep the search term (file|badger|memory)")

	cmd.AddCommand(newListCommand(opts))

	return cmd
}

// uiEvents are forwarded from the bus to the UI
var uiEvents = []eventbus.EventType{
	eventbus.EventFetchSucceeded,
	eventbus.EventFetchFailed,
	eventbus.EventItemRemoved,
	eventbus.EventError,
}

func runTUI(opts *rootOptions) error {
	a, err := newApp(opts, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	sess := session.New(session.Options{
		DefaultQuery: a.cfg.DefaultQuery,
		Query:        opts.Query,
	}, a.source, a.kv, a.bus, a.logger)
	defer sess.Close()

	uiModel := ui.NewModel(sess, a.cfg, a.bus, a.logger)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	for _, t := range uiEvents {
		unsubscribe := a.bus.Subscribe(t, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				a.logger.Warnw("event channel full, dropping event", "type", e.Type())
			}
		})
		defer unsubscribe()
	}

	// Start forwarding events to UI in background
	done := make(chan struct{})
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	// Handle termination signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)
	go func() {
		if _, ok := <-sigChan; ok {
			a.logger.Infow("signal received, quitting")
			p.Quit()
		}
	}()

	a.logger.Infow("starting", "query", sess.Query(), "source", a.cfg.Source.Kind, "store", a.cfg.Store.Backend)
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "running program")
	}
	a.logger.Infow("stopped", "discarded_results", sess.Discarded())
	return nil
}
