package listpanel

import (
	"disaster-map/models/constants"
	"disaster-map/pkg/mapsurface"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// New creates an empty panel whose entries act on the given surface.
func New(id string, surface mapsurface.Surface) *Impl {
	return &Impl{id: id, surface: surface}
}

func (p *Impl) ID() string {
	return p.id
}

func (p *Impl) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.entries = nil
	p.text = ""
}

// Append adds an entry at the end of the panel and returns its id.
func (p *Impl) Append(className, html string, timestamp time.Time, binding Binding) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.add(EntrySpec{ClassName: className, HTML: html, Timestamp: timestamp, Binding: binding})
}

// Replace swaps all entries and the status text in one step and returns
// the new entry ids in order.
func (p *Impl) Replace(specs []EntrySpec) []int {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.entries = make([]Entry, 0, len(specs))
	p.text = ""

	ids := make([]int, 0, len(specs))
	for _, spec := range specs {
		ids = append(ids, p.add(spec))
	}
	return ids
}

func (p *Impl) add(spec EntrySpec) int {
	p.nextID++
	p.entries = append(p.entries, Entry{
		ID:        p.nextID,
		Index:     len(p.entries),
		ClassName: spec.ClassName,
		HTML:      spec.HTML,
		Timestamp: spec.Timestamp,
		Binding:   spec.Binding,
	})
	return p.nextID
}

// SetText replaces the whole panel content with a plain message.
func (p *Impl) SetText(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.entries = nil
	p.text = text
}

// SetStatus shows a message above the current entries without removing them.
func (p *Impl) SetStatus(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.text = text
}

// Click runs the action bound to the entry with the given id and returns
// the resulting view of the surface.
func (p *Impl) Click(id int) (mapsurface.View, error) {
	p.mu.RLock()
	entry, found := lo.Find(p.entries, func(e Entry) bool { return e.ID == id })
	p.mu.RUnlock()
	if !found {
		return mapsurface.View{}, fmt.Errorf("%w: panel %s has no entry %d", ErrEntryNotFound, p.id, id)
	}
	binding := entry.Binding

	log.Debug().
		Str(constants.LogPanelID, p.id).
		Int("entryID", id).
		Float64("lat", binding.Position.Lat).
		Float64("lng", binding.Position.Lng).
		Msg("List entry clicked")

	p.surface.Focus(binding.Position, binding.Zoom)
	if !binding.Marker.IsZero() {
		p.surface.OpenPopup(binding.Marker)
	}

	return p.surface.Snapshot().View, nil
}

func (p *Impl) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	entries := make([]Entry, len(p.entries))
	copy(entries, p.entries)
	return Snapshot{ID: p.id, Text: p.text, Entries: entries}
}
