package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"arklight/internal/models"
	"arklight/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestMusicCreateRequiresMediaHostURLs(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectInsert   bool
	}{
		{
			name:           "valid track",
			body:           `{"title":"Amazing Grace","artist":"Choir","genre":"Hymns","image_url":"https://res.cloudinary.com/demo/image/upload/v1/arkoflight/images/cover.jpg","audio_url":"https://res.cloudinary.com/demo/video/upload/v1/arkoflight/music/track.mp3"}`,
			expectedStatus: http.StatusCreated,
			expectInsert:   true,
		},
		{
			name:           "image hosted elsewhere",
			body:           `{"title":"Amazing Grace","artist":"Choir","image_url":"https://example.com/cover.jpg","audio_url":"https://res.cloudinary.com/demo/video/upload/track.mp3"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "audio hosted elsewhere",
			body:           `{"title":"Amazing Grace","artist":"Choir","image_url":"https://res.cloudinary.com/demo/image/upload/cover.jpg","audio_url":"https://cdn.example.com/track.mp3"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "both empty",
			body:           `{"title":"Amazing Grace","artist":"Choir"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing artist",
			body:           `{"title":"Amazing Grace","image_url":"https://res.cloudinary.com/demo/image/upload/cover.jpg","audio_url":"https://res.cloudinary.com/demo/video/upload/track.mp3"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			if tt.expectInsert {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `music_tracks`").WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			}

			h := NewMusicHandler(repository.NewContentRepository[models.MusicTrack](db, "created_at DESC"))
			c, w := setupTestContext()
			withJSONBody(c, http.MethodPost, tt.body)

			h.Create(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMusicList(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "title", "artist", "genre", "image_url", "audio_url"}).
		AddRow(1, "Amazing Grace", "Choir", "Hymns", "https://res.cloudinary.com/demo/a.jpg", "https://res.cloudinary.com/demo/a.mp3").
		AddRow(2, "How Great", "Band", "Worship", "https://res.cloudinary.com/demo/b.jpg", "https://res.cloudinary.com/demo/b.mp3")
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	h := NewMusicHandler(repository.NewContentRepository[models.MusicTrack](db, "created_at DESC"))
	c, w := setupTestContext()

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Tracks []models.MusicTrack `json:"tracks"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Tracks, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
