//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Story is one sample story served by the offline source
type Story struct {
	ID       string
	Title    string
	Author   string
	Comments int
	Points   int
}

// ConfigOption is a function that configures the generated config file
type ConfigOption func(*configOptions)

type configOptions struct {
	query   string
	stories []Story
	backend string
	latency string
}

// WithQuery sets the default search term
func WithQuery(q string) ConfigOption {
	return func(opts *configOptions) {
		opts.query = q
	}
}

// WithStories replaces the sample stories
func WithStories(stories ...Story) ConfigOption {
	return func(opts *configOptions) {
		opts.stories = stories
	}
}

// WithBackend selects the store backend
func WithBackend(backend string) ConfigOption {
	return func(opts *configOptions) {
		opts.backend = backend
	}
}

// WithLatency delays every answer of the offline source
func WithLatency(d string) ConfigOption {
	return func(opts *configOptions) {
		opts.latency = d
	}
}

// DefaultStories are served when no stories are given
var DefaultStories = []Story{
	{ID: "1", Title: "Zig reaches 1.0", Author: "andrewrk", Comments: 120, Points: 900},
	{ID: "2", Title: "Go generics in practice", Author: "rsc", Comments: 40, Points: 300},
	{ID: "3", Title: "A tour of Go modules", Author: "bcmills", Comments: 10, Points: 150},
}

// CreateTestWorkspace creates a temporary directory used as $HOME
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteConfig writes an offline config into the workspace and returns its path
func (tf *TUITestFramework) WriteConfig(options ...ConfigOption) (string, error) {
	if tf.workspace == "" {
		if _, err := tf.CreateTestWorkspace(); err != nil {
			return "", err
		}
	}

	opts := &configOptions{query: "Go", stories: DefaultStories, backend: "file", latency: "0s"}
	for _, option := range options {
		option(opts)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "default_query = %q\n\n", opts.query)
	b.WriteString("[welcome]\ngreeting = \"Hey\"\ntitle = \"Hacker News\"\n\n")
	fmt.Fprintf(&b, "[source]\nkind = \"static\"\nlatency = %q\n\n", opts.latency)
	fmt.Fprintf(&b, "[store]\nbackend = %q\npath = \"state\"\n\n", opts.backend)
	b.WriteString("[log]\nfile = \"hnstories.log\"\nlevel = \"debug\"\n")
	for _, s := range opts.stories {
		fmt.Fprintf(&b, "\n[[sample]]\nid = %q\ntitle = %q\nauthor = %q\nnum_comments = %d\npoints = %d\n",
			s.ID, s.Title, s.Author, s.Comments, s.Points)
	}

	dir := filepath.Join(tf.workspace, ".config", "hnstories")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config dir: %w", err)
	}
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}
