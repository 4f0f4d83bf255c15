package listpanel

import (
	"disaster-map/models/entities"
	"disaster-map/pkg/mapsurface"
	"errors"
	"sync"
	"time"
)

var ErrEntryNotFound = errors.New("list entry not found")

type Panel interface {
	ID() string
	Clear()
	Append(className, html string, timestamp time.Time, binding Binding) int
	Replace(specs []EntrySpec) []int
	SetText(text string)
	SetStatus(text string)
	Click(id int) (mapsurface.View, error)
	Snapshot() Snapshot
}

// Binding is the data a list entry acts upon when clicked: the view to
// focus and, optionally, the marker whose popup opens.
type Binding struct {
	Position entities.Position       `json:"position"`
	Zoom     int                     `json:"zoom"`
	Marker   mapsurface.MarkerHandle `json:"marker"`
}

// EntrySpec is an entry not yet added to a panel.
type EntrySpec struct {
	ClassName string
	HTML      string
	Timestamp time.Time
	Binding   Binding
}

// Entry ids are unique within a panel and never reused, so a click sent for
// an entry that a refresh has since replaced no longer resolves.
type Entry struct {
	ID        int       `json:"id"`
	Index     int       `json:"index"`
	ClassName string    `json:"className"`
	HTML      string    `json:"html"`
	Timestamp time.Time `json:"timestamp"`
	Binding   Binding   `json:"binding"`
}

type Snapshot struct {
	ID      string  `json:"id"`
	Text    string  `json:"text,omitempty"`
	Entries []Entry `json:"entries"`
}

type Impl struct {
	mu      sync.RWMutex
	id      string
	surface mapsurface.Surface
	text    string
	entries []Entry
	nextID  int
}
