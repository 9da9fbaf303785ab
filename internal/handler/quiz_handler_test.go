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

func TestQuizCreateValidation(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedError  string
		expectInsert   bool
	}{
		{
			name:           "valid question",
			body:           `{"question":"Who built the ark?","options":["Noah","Moses","David"],"correct_option":0}`,
			expectedStatus: http.StatusCreated,
			expectInsert:   true,
		},
		{
			name:           "fewer than 2 options",
			body:           `{"question":"Who built the ark?","options":["Noah"],"correct_option":0}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "please enter at least 2 options",
		},
		{
			name:           "blank options do not count",
			body:           `{"question":"Who built the ark?","options":["Noah","  ",""],"correct_option":0}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "please enter at least 2 options",
		},
		{
			name:           "correct index out of bounds",
			body:           `{"question":"Who built the ark?","options":["Noah","Moses"],"correct_option":2}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "please select a valid correct option",
		},
		{
			name:           "correct index points at a blank option",
			body:           `{"question":"Who built the ark?","options":["Noah","Moses",""],"correct_option":2}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "please select a valid correct option",
		},
		{
			name:           "more than 4 options",
			body:           `{"question":"Who built the ark?","options":["a","b","c","d","e"],"correct_option":0}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "at most 4 options are allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			if tt.expectInsert {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `game_sword`").WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			}

			h := NewQuizHandler(repository.NewContentRepository[models.QuizQuestion](db, "id ASC"))
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

func TestQuizCreateStripsBlankOptions(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `game_sword`").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	h := NewQuizHandler(repository.NewContentRepository[models.QuizQuestion](db, "id ASC"))
	c, w := setupTestContext()
	withJSONBody(c, http.MethodPost, `{"question":"How many days of rain?","options":[" 40 ","","7",""],"correct_option":0}`)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var q models.QuizQuestion
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &q))
	assert.Equal(t, []string{"40", "7"}, q.Options)
	assert.Equal(t, 0, q.CorrectOption)
	assert.NoError(t, mock.ExpectationsWereMet())
}
