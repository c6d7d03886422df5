package domain

import (
	"fmt"
	"strings"
	"time"
)

// Item is a record fetched from one corpus.
//
// Item is a closed set: only CodeItem, RepositoryItem and IssueItem
// implement it. Scoring, sorting and formatting work through these
// accessors, so a new variant does not compile until it provides all of them.
type Item interface {
	// Name is the identifying name shown to users.
	Name() string

	// Location is where the item lives (path, full name, repo#number).
	Location() string

	// Link is the canonical web URL. It doubles as the item identity.
	Link() string

	// SearchText is the text keyword matching runs against.
	SearchText() string

	// LastUpdated returns the last update time; false when unknown.
	LastUpdated() (time.Time, bool)

	// Popularity returns the star or upvote count; false when unknown.
	Popularity() (int, bool)

	sealed()
}

// CodeItem is a file hit from code search.
type CodeItem struct {
	FileName   string    `json:"name"`
	Path       string    `json:"path"`
	Repository string    `json:"repository"`
	Stars      int       `json:"stars,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
	URL        string    `json:"url"`
}

// Name implements Item.
func (c CodeItem) Name() string { return c.FileName }

// Location implements Item.
func (c CodeItem) Location() string {
	if c.Repository == "" {
		return c.Path
	}
	return c.Repository + "/" + c.Path
}

// Link implements Item.
func (c CodeItem) Link() string { return c.URL }

// SearchText implements Item.
func (c CodeItem) SearchText() string { return c.FileName + " " + c.Path }

// LastUpdated implements Item.
func (c CodeItem) LastUpdated() (time.Time, bool) { return c.UpdatedAt, !c.UpdatedAt.IsZero() }

// Popularity implements Item.
func (c CodeItem) Popularity() (int, bool) { return c.Stars, c.Stars > 0 }

func (CodeItem) sealed() {}

// RepositoryItem is a hit from repository search.
type RepositoryItem struct {
	FullName    string    `json:"full_name"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language,omitempty"`
	Stars       int       `json:"stars"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
	URL         string    `json:"url"`
}

// Name implements Item.
func (r RepositoryItem) Name() string { return r.FullName }

// Location implements Item.
func (r RepositoryItem) Location() string {
	if r.Language == "" {
		return r.FullName
	}
	return fmt.Sprintf("%s (%s)", r.FullName, r.Language)
}

// Link implements Item.
func (r RepositoryItem) Link() string { return r.URL }

// SearchText implements Item.
func (r RepositoryItem) SearchText() string { return r.FullName + " " + r.Description }

// LastUpdated implements Item.
func (r RepositoryItem) LastUpdated() (time.Time, bool) { return r.UpdatedAt, !r.UpdatedAt.IsZero() }

// Popularity implements Item.
func (r RepositoryItem) Popularity() (int, bool) { return r.Stars, true }

func (RepositoryItem) sealed() {}

// IssueItem is a hit from issue search. Discussions currently arrive as
// IssueItems too, with ViaIssueFallback set.
type IssueItem struct {
	Number     int       `json:"number"`
	Title      string    `json:"title"`
	Body       string    `json:"body,omitempty"`
	State      string    `json:"state"`
	Repository string    `json:"repository"`
	Reactions  int       `json:"reactions,omitempty"`
	Comments   int       `json:"comments,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
	URL        string    `json:"url"`

	// ViaIssueFallback marks discussions served by the issue search endpoint.
	ViaIssueFallback bool `json:"via_issue_fallback,omitempty"`
}

// Name implements Item.
func (i IssueItem) Name() string { return i.Title }

// Location implements Item.
func (i IssueItem) Location() string {
	loc := fmt.Sprintf("%s#%d", i.Repository, i.Number)
	if i.State != "" {
		loc += " [" + strings.ToLower(i.State) + "]"
	}
	return loc
}

// Link implements Item.
func (i IssueItem) Link() string { return i.URL }

// SearchText implements Item.
func (i IssueItem) SearchText() string { return i.Title + " " + i.Body }

// LastUpdated implements Item.
func (i IssueItem) LastUpdated() (time.Time, bool) { return i.UpdatedAt, !i.UpdatedAt.IsZero() }

// Popularity implements Item.
func (i IssueItem) Popularity() (int, bool) { return i.Reactions, i.Reactions > 0 }

func (IssueItem) sealed() {}
