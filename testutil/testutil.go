package testutil

import (
	"bytes"
	"io"
	"mime/multipart"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/mbolis/survey-backend/config"
	"github.com/mbolis/survey-backend/database"
)

// Config returns a configuration backed by a fresh SQLite file and upload
// directory, both removed when the test ends.
func Config(t *testing.T) config.Config {
	t.Helper()

	dir := t.TempDir()
	return config.Config{
		Addr:          "127.0.0.1:0",
		DBDriver:      config.DriverSQLite,
		DBPath:        filepath.Join(dir, "survey.sqlite"),
		UploadDir:     filepath.Join(dir, "uploads"),
		MaxUploadSize: config.DefaultMaxUpload,
		CORSOrigins:   []string{"*"},
		DateLayout:    config.DefaultDateLayout,
	}
}

// OpenDB opens a migrated SQLite database for cfg.
func OpenDB(t *testing.T, cfg config.Config) *sqlx.DB {
	t.Helper()

	db, err := database.Open(cfg)
	require.NoError(t, err, "open test database")
	t.Cleanup(func() { db.Close() })
	return db
}

// MultipartFile streams a multipart body holding size bytes under field,
// without buffering the payload in memory.
func MultipartFile(t *testing.T, field, filename string, size int64) (io.ReadCloser, string) {
	t.Helper()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		part, err := mw.CreateFormFile(field, filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.CopyN(part, filler{}, size); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()
	t.Cleanup(func() { pr.Close() })
	return pr, mw.FormDataContentType()
}

// MultipartFields builds a multipart body with plain text fields only.
func MultipartFields(t *testing.T, fields map[string]string) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

type filler struct{}

func (filler) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'x'
	}
	return len(p), nil
}
