package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"arklight/pkg/cloudinary"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB wires a sqlmock connection behind gorm so handlers run
// against expectations instead of a live MySQL.
func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	cleanup := func() { db.Close() }
	return gdb, mock, cleanup
}

// setupTestContext returns a Gin context backed by a response recorder.
func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func withJSONBody(c *gin.Context, method, body string) {
	c.Request = httptest.NewRequest(method, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
}

func withParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

// fakeCloud is a stand-in media host for upload tests.
type fakeCloud struct {
	result   *cloudinary.UploadResult
	err      error
	gotKind  cloudinary.Kind
	gotName  string
	gotBytes int64
}

func (f *fakeCloud) Upload(ctx context.Context, file io.Reader, kind cloudinary.Kind, originalName string) (*cloudinary.UploadResult, error) {
	f.gotKind = kind
	f.gotName = originalName
	n, _ := io.Copy(io.Discard, file)
	f.gotBytes = n
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return nil, errors.New("no result configured")
}
