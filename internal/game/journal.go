package game

import (
	"sync"

	"github.com/google/uuid"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
)

// Entry is one action verdict and the state checksum right after it.
type Entry struct {
	Seq      int
	Turn     int
	Kind     rules.ActionKind
	State    rules.ActionState
	Reasons  []string
	Checksum string
}

// Journal records every action verdict of a match in order. It can be
// stepped through like a replay.
type Journal struct {
	id      string
	match   *model.Match
	entries []Entry
	cursor  int
	mu      sync.RWMutex
}

// NewJournal creates an empty journal for match.
func NewJournal(match *model.Match) *Journal {
	return &Journal{
		id:    uuid.NewString(),
		match: match,
	}
}

// ID identifies the journal in logs.
func (j *Journal) ID() string { return j.id }

// Record appends the verdict of action.
func (j *Journal) Record(action rules.Action) {
	status := action.Status()
	entry := Entry{
		Turn:     j.match.TurnNumber,
		Kind:     action.Kind(),
		State:    status.State,
		Reasons:  append([]string(nil), status.Reasons...),
		Checksum: Checksum(j.match),
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	entry.Seq = len(j.entries)
	j.entries = append(j.entries, entry)
}

// Size returns the number of recorded entries.
func (j *Journal) Size() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}

// Entries returns a copy of every entry.
func (j *Journal) Entries() []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return append([]Entry(nil), j.entries...)
}

// At returns the entry at index.
func (j *Journal) At(index int) (Entry, bool) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if index < 0 || index >= len(j.entries) {
		return Entry{}, false
	}
	return j.entries[index], true
}

// Start rewinds the cursor to the first entry.
func (j *Journal) Start() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.cursor = 0
}

// Next returns the entry under the cursor and advances it.
func (j *Journal) Next() (Entry, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.cursor >= len(j.entries) {
		return Entry{}, false
	}
	entry := j.entries[j.cursor]
	j.cursor++
	return entry, true
}

// Previous moves the cursor back and returns that entry.
func (j *Journal) Previous() (Entry, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.cursor == 0 {
		return Entry{}, false
	}
	j.cursor--
	return j.entries[j.cursor], true
}

// Skip moves the cursor by count, clamped to the recorded range.
func (j *Journal) Skip(count int) (Entry, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.entries) == 0 {
		return Entry{}, false
	}
	j.cursor = max(0, min(j.cursor+count, len(j.entries)-1))
	return j.entries[j.cursor], true
}

// Rejected returns the entries whose action was vetoed.
func (j *Journal) Rejected() []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()
	var out []Entry
	for _, e := range j.entries {
		if e.State == rules.StateRejected {
			out = append(out, e)
		}
	}
	return out
}
