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

func TestSliderCreateValidation(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedError  string
		expectedStatus int
		expectInsert   bool
	}{
		{
			name:           "valid slide",
			body:           `{"title":"Welcome","image_url":"https://res.cloudinary.com/demo/image/upload/welcome.jpg","button_url":"https://arkoflight.org/events","sort_order":1}`,
			expectedStatus: http.StatusCreated,
			expectInsert:   true,
		},
		{
			name:           "duplicate sort order is allowed",
			body:           `{"title":"Second","image_url":"https://res.cloudinary.com/demo/image/upload/second.jpg","sort_order":1}`,
			expectedStatus: http.StatusCreated,
			expectInsert:   true,
		},
		{
			name:           "sort order out of range",
			body:           `{"title":"Fifth","image_url":"https://res.cloudinary.com/demo/image/upload/fifth.jpg","sort_order":5}`,
			expectedError:  "sort_order must be between 1 and 4",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "image not uploaded",
			body:           `{"title":"Welcome","sort_order":1}`,
			expectedError:  "please upload an image first",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			if tt.expectInsert {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `slider_slides`").WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			}

			h := NewSliderHandler(repository.NewContentRepository[models.SliderSlide](db, "sort_order ASC, id ASC"))
			c, w := setupTestContext()
			withJSONBody(c, http.MethodPost, tt.body)

			h.Create(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp["error"])
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHomeCardDeleteMissingRowIsNoOp(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `home_cards`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	h := NewHomeCardHandler(repository.NewContentRepository[models.HomeCard](db, "id ASC"))
	c, w := setupTestContext()
	withParam(c, "id", "404")

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
