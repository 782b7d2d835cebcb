package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"hnstories/internal/domain"
	"hnstories/internal/session"
)

// errSearchFailed is returned when the one search of the list command fails
var errSearchFailed = errors.New("search failed")

// newListCommand creates the list command
func newListCommand(rootOpts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "Run one search and print the matching stories",
		Long: `Run one search without the TUI and print the stories whose title
contains the search term. Without a query the stored search term is used.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := *rootOpts
			if len(args) == 1 {
				opts.Query = args[0]
			}
			return runList(&opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	return cmd
}

func runList(opts *rootOptions, out, errOut io.Writer) error {
	a, err := newApp(opts, errOut)
	if err != nil {
		return err
	}
	defer a.Close()

	sess := session.New(session.Options{
		DefaultQuery: a.cfg.DefaultQuery,
		Query:        opts.Query,
	}, a.source, a.kv, a.bus, a.logger)
	defer sess.Close()

	// The headless loop: issue the search and fold its one result
	if cmd := sess.Init(); cmd != nil {
		sess.Handle(cmd())
	}

	if sess.State().IsError {
		return errors.Wrapf(errSearchFailed, "query %q", sess.Query())
	}
	return printStories(out, sess.Visible())
}

func printStories(out io.Writer, items []domain.Item) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(out, "No stories match")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tAUTHOR\tCOMMENTS\tPOINTS\tURL")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", item.Title, item.Author, item.NumComments, item.Points, item.URL)
	}
	return w.Flush()
}
