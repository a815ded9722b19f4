package middlewares

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbolis/survey-backend/log"
)

func TestLoggerWritesOneEntryPerRequest(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	handler := middleware.RequestID(Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("ok"))
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/surveys", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "request_id=")
	assert.NotContains(t, lines[0], `request_id=""`)
	assert.Contains(t, lines[0], "status=201")
	assert.Contains(t, lines[0], "method=POST")
	assert.Contains(t, lines[0], "path=/surveys")
	assert.Contains(t, lines[0], "bytes=2")
}
