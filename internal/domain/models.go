package domain

import "time"

// Item represents a story returned by a search
type Item struct {
	ID          string    `json:"objectID" toml:"id"`
	Title       string    `json:"title" toml:"title"`
	URL         string    `json:"url" toml:"url"`
	Author      string    `json:"author" toml:"author"`
	NumComments int       `json:"num_comments" toml:"num_comments"`
	Points      int       `json:"points" toml:"points"`
	CreatedAt   time.Time `json:"created_at" toml:"-"`
}

// Welcome is the greeting shown above the search box
type Welcome struct {
	Greeting string `toml:"greeting"`
	Title    string `toml:"title"`
}

// Headline joins greeting and title the way the header shows them
func (w Welcome) Headline() string {
	switch {
	case w.Greeting == "":
		return w.Title
	case w.Title == "":
		return w.Greeting
	default:
		return w.Greeting + " " + w.Title
	}
}
