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

func TestBroadcastCreateRequiresUploadedImage(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	h := NewBroadcastHandler(repository.NewContentRepository[models.BroadcastEvent](db, "event_time ASC"))
	c, w := setupTestContext()
	withJSONBody(c, http.MethodPost, `{"title":"Sunday Service","description":"Weekly gathering","event_time":"2024-06-02T10:00"}`)

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "please upload an image first", resp["error"])
	// no store write may happen on validation failure
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBroadcastCreateActiveCap(t *testing.T) {
	tests := []struct {
		name           string
		activeCount    int64
		expectedStatus int
		expectInsert   bool
	}{
		{name: "under cap", activeCount: 4, expectedStatus: http.StatusCreated, expectInsert: true},
		{name: "at cap", activeCount: 5, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			mock.ExpectQuery("SELECT count").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.activeCount))
			if tt.expectInsert {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `broadcast_events`").WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			}

			h := NewBroadcastHandler(repository.NewContentRepository[models.BroadcastEvent](db, "event_time ASC"))
			c, w := setupTestContext()
			withJSONBody(c, http.MethodPost, `{"title":"Sunday Service","description":"Weekly gathering","event_time":"2024-06-02T10:00","image_url":"https://res.cloudinary.com/demo/image/upload/service.jpg"}`)

			h.Create(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBroadcastCreateRejectsBadEventTime(t *testing.T) {
	db, _, cleanup := setupTestDB(t)
	defer cleanup()

	h := NewBroadcastHandler(repository.NewContentRepository[models.BroadcastEvent](db, "event_time ASC"))
	c, w := setupTestContext()
	withJSONBody(c, http.MethodPost, `{"title":"Sunday Service","description":"Weekly gathering","event_time":"next sunday","image_url":"https://res.cloudinary.com/demo/image/upload/service.jpg"}`)

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
