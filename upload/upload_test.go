package upload

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbolis/survey-backend/testutil"
)

var reImageURL = regexp.MustCompile(`^/uploads/image-\d+\.png$`)

func newUploadRequest(t *testing.T, field, filename string, size int64) *http.Request {
	body, contentType := testutil.MultipartFile(t, field, filename, size)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	return req
}

func listDir(t *testing.T, dir string) []string {
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	g, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, g.Dir())
	assert.Equal(t, int64(DefaultMaxSize), g.MaxSize())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestReceiveStoresFile(t *testing.T) {
	dir := t.TempDir()
	g, err := New(dir)
	require.NoError(t, err)

	const size = 10 << 20
	url, n, err := g.Receive(httptest.NewRecorder(), newUploadRequest(t, FieldName, "photo.png", size))
	require.NoError(t, err)
	assert.Regexp(t, reImageURL, url)
	assert.Equal(t, int64(size), n)

	info, err := os.Stat(filepath.Join(dir, strings.TrimPrefix(url, URLPrefix)))
	require.NoError(t, err)
	assert.Equal(t, int64(size), info.Size())
}

func TestReceiveRejectsOversizedFile(t *testing.T) {
	dir := t.TempDir()
	g, err := New(dir)
	require.NoError(t, err)

	_, _, err = g.Receive(httptest.NewRecorder(), newUploadRequest(t, FieldName, "huge.png", 60<<20))
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Empty(t, listDir(t, dir), "partial file must be removed")
}

func TestReceiveAcceptsExactLimit(t *testing.T) {
	dir := t.TempDir()
	g, err := New(dir, WithMaxSize(1024))
	require.NoError(t, err)

	_, n, err := g.Receive(httptest.NewRecorder(), newUploadRequest(t, FieldName, "edge.png", 1024))
	require.NoError(t, err)
	assert.Equal(t, int64(1024), n)

	_, _, err = g.Receive(httptest.NewRecorder(), newUploadRequest(t, FieldName, "edge.png", 1025))
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Len(t, listDir(t, dir), 1)
}

func TestReceiveWithoutFile(t *testing.T) {
	dir := t.TempDir()
	g, err := New(dir)
	require.NoError(t, err)

	t.Run("other field", func(t *testing.T) {
		_, _, err := g.Receive(httptest.NewRecorder(), newUploadRequest(t, "file", "photo.png", 128))
		assert.ErrorIs(t, err, ErrNoFile)
	})

	t.Run("text fields only", func(t *testing.T) {
		body, contentType := testutil.MultipartFields(t, map[string]string{"image": "not a file"})
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)

		_, _, err := g.Receive(httptest.NewRecorder(), req)
		assert.ErrorIs(t, err, ErrNoFile)
	})

	t.Run("not multipart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(`{"image":"x"}`))
		req.Header.Set("Content-Type", "application/json")

		_, _, err := g.Receive(httptest.NewRecorder(), req)
		assert.ErrorIs(t, err, ErrNoFile)
	})

	assert.Empty(t, listDir(t, dir))
}

func TestReceiveSameMillisecond(t *testing.T) {
	dir := t.TempDir()
	frozen := time.UnixMilli(1700000000000)
	g, err := New(dir, WithClock(func() time.Time { return frozen }))
	require.NoError(t, err)

	first, _, err := g.Receive(httptest.NewRecorder(), newUploadRequest(t, FieldName, "a.png", 16))
	require.NoError(t, err)
	second, _, err := g.Receive(httptest.NewRecorder(), newUploadRequest(t, FieldName, "b.png", 16))
	require.NoError(t, err)

	assert.Equal(t, "/uploads/image-1700000000000.png", first)
	assert.Equal(t, "/uploads/image-1700000000001.png", second)
}

func TestReceiveSkipsExistingFile(t *testing.T) {
	dir := t.TempDir()
	frozen := time.UnixMilli(1700000000000)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "image-1700000000000.png"), []byte("old"), 0o644))

	g, err := New(dir, WithClock(func() time.Time { return frozen }))
	require.NoError(t, err)

	url, _, err := g.Receive(httptest.NewRecorder(), newUploadRequest(t, FieldName, "a.png", 16))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/image-1700000000001.png", url)

	old, err := os.ReadFile(filepath.Join(dir, "image-1700000000000.png"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(old))
}

func TestSequenceIsUnique(t *testing.T) {
	seq := newSequence(time.Now)

	const workers, perWorker = 16, 200
	var (
		mu   sync.Mutex
		seen = make(map[int64]bool, workers*perWorker)
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				n := seq.Next()
				mu.Lock()
				seen[n] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}

func TestFileServer(t *testing.T) {
	dir := t.TempDir()
	g, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "image-1.png"), []byte("png!"), 0o644))

	srv := g.FileServer()

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/image-1.png", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png!", rec.Body.String())

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
