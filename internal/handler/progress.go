package handler

import (
	"io"
	"sync"
)

// ProgressTracker keeps per-upload transfer percentages so the console
// can poll while a file streams to the media host. Percentages never
// decrease within one attempt and reset to 0 when the same upload ID
// starts a new attempt.
type ProgressTracker struct {
	mu  sync.Mutex
	pct map[string]int
}

func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{pct: make(map[string]int)}
}

// Start begins a new attempt for id at 0%.
func (t *ProgressTracker) Start(id string) {
	t.mu.Lock()
	t.pct[id] = 0
	t.mu.Unlock()
}

// Set records progress for id, clamped to 0-100 and monotonic within the
// attempt.
func (t *ProgressTracker) Set(id string, pct int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	t.mu.Lock()
	if cur, ok := t.pct[id]; !ok || pct > cur {
		t.pct[id] = pct
	}
	t.mu.Unlock()
}

// Done marks the attempt complete.
func (t *ProgressTracker) Done(id string) {
	t.Set(id, 100)
}

// Get returns the current percentage for id.
func (t *ProgressTracker) Get(id string) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	pct, ok := t.pct[id]
	return pct, ok
}

// Forget drops a finished upload from the tracker.
func (t *ProgressTracker) Forget(id string) {
	t.mu.Lock()
	delete(t.pct, id)
	t.mu.Unlock()
}

// progressReader reports bytes read against a known total to the
// tracker as a 0-100 percentage.
type progressReader struct {
	r       io.Reader
	total   int64
	read    int64
	id      string
	tracker *ProgressTracker
}

func newProgressReader(r io.Reader, total int64, id string, tracker *ProgressTracker) *progressReader {
	return &progressReader{r: r, total: total, id: id, tracker: tracker}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.total > 0 {
		p.read += int64(n)
		p.tracker.Set(p.id, int(p.read*100/p.total))
	}
	return n, err
}
