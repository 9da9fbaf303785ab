package handler

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressMonotonicWithinAttempt(t *testing.T) {
	tracker := NewProgressTracker()
	tracker.Start("u")

	last := 0
	for _, pct := range []int{10, 5, 40, 40, 30, 99, 150} {
		tracker.Set("u", pct)
		cur, ok := tracker.Get("u")
		assert.True(t, ok)
		assert.GreaterOrEqual(t, cur, last, "progress must never decrease")
		assert.LessOrEqual(t, cur, 100)
		last = cur
	}
	assert.Equal(t, 100, last)
}

func TestProgressResetsOnNewAttempt(t *testing.T) {
	tracker := NewProgressTracker()
	tracker.Start("u")
	tracker.Set("u", 80)

	tracker.Start("u")
	pct, ok := tracker.Get("u")
	assert.True(t, ok)
	assert.Equal(t, 0, pct, "a new attempt starts back at 0")
}

func TestProgressForget(t *testing.T) {
	tracker := NewProgressTracker()
	tracker.Start("u")
	tracker.Done("u")
	tracker.Forget("u")
	_, ok := tracker.Get("u")
	assert.False(t, ok)
}

func TestProgressReaderReportsPercentages(t *testing.T) {
	tracker := NewProgressTracker()
	tracker.Start("u")
	payload := bytes.Repeat([]byte("a"), 1000)
	r := newProgressReader(bytes.NewReader(payload), int64(len(payload)), "u", tracker)

	buf := make([]byte, 250)
	seen := []int{}
	for {
		n, err := r.Read(buf)
		if n > 0 {
			pct, _ := tracker.Get("u")
			seen = append(seen, pct)
		}
		if err == io.EOF {
			break
		}
		assert.NoError(t, err)
	}

	for i := 1; i < len(seen); i++ {
		assert.GreaterOrEqual(t, seen[i], seen[i-1])
	}
	final, _ := tracker.Get("u")
	assert.Equal(t, 100, final)
}
