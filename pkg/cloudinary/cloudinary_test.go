package cloudinary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "banner.jpg", "banner"},
		{"uppercase lowered", "Sunday Service.MP3", "sunday_service"},
		{"specials collapse to one underscore", "my -- song!!.mp3", "my_song"},
		{"leading and trailing junk trimmed", "  __cover__.png", "cover"},
		{"path component stripped", "uploads/2024/hero.webp", "hero"},
		{"double extension cut at first dot", "sermon.final.mp4", "sermon"},
		{"empty falls back", "...", "file"},
		{"unicode replaced", "молитва.jpg", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFileName(tt.input))
		})
	}
}

func TestSanitizeFileNameCapsAt50(t *testing.T) {
	long := strings.Repeat("a", 80) + ".jpg"
	got := SanitizeFileName(long)
	assert.Len(t, got, 50)
	assert.Equal(t, strings.Repeat("a", 50), got)
}

func TestIsMediaURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{"uploaded asset", "https://res.cloudinary.com/demo/image/upload/v1/arkoflight/images/1_banner.jpg", true},
		{"http rejected", "http://res.cloudinary.com/demo/image/upload/x.jpg", false},
		{"other host rejected", "https://example.com/x.jpg", false},
		{"lookalike host rejected", "https://res.cloudinary.com.evil.com/x.jpg", false},
		{"empty", "", false},
		{"not a url", "://broken", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMediaURL(tt.url))
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"image", "audio", "video", "document"} {
		k, ok := ParseKind(s)
		assert.True(t, ok)
		assert.Equal(t, Kind(s), k)
	}
	for _, s := range []string{"", "Image", "spreadsheet", "img"} {
		_, ok := ParseKind(s)
		assert.False(t, ok, s)
	}
}

func TestFolderPerKind(t *testing.T) {
	c := &clientImpl{rootFolder: "arkoflight"}
	assert.Equal(t, "arkoflight/images", c.folder(KindImage))
	assert.Equal(t, "arkoflight/music", c.folder(KindAudio))
	assert.Equal(t, "arkoflight/videos", c.folder(KindVideo))
	assert.Equal(t, "arkoflight/resources", c.folder(KindDocument))
}
