package upload

import (
	"errors"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
)

const (
	FieldName      = "image"
	URLPrefix      = "/uploads/"
	DefaultMaxSize = 50 << 20

	// room for multipart headers and small form fields around the file
	bodyOverhead = 1 << 20
)

var (
	ErrNoFile   = errors.New("no file uploaded")
	ErrTooLarge = errors.New("file too large")
)

// Gateway stores single-file uploads under a local directory.
type Gateway struct {
	dir     string
	maxSize int64
	seq     *sequence
}

type Option func(*Gateway)

func WithMaxSize(n int64) Option {
	return func(g *Gateway) {
		if n > 0 {
			g.maxSize = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Gateway) {
		g.seq = newSequence(now)
	}
}

// New creates dir if it does not exist yet.
func New(dir string, opts ...Option) (*Gateway, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, pkgerrors.Wrap(err, "upload.mkdir")
	}
	g := &Gateway{
		dir:     dir,
		maxSize: DefaultMaxSize,
		seq:     newSequence(time.Now),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *Gateway) Dir() string {
	return g.dir
}

func (g *Gateway) MaxSize() int64 {
	return g.maxSize
}

// Receive streams the request body and writes the first file sent under
// FieldName to disk. It returns the public URL of the stored file and the
// number of bytes written.
func (g *Gateway) Receive(w http.ResponseWriter, r *http.Request) (string, int64, error) {
	r.Body = http.MaxBytesReader(w, r.Body, g.maxSize+bodyOverhead)

	mr, err := r.MultipartReader()
	if err != nil {
		return "", 0, ErrNoFile
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return "", 0, ErrNoFile
		}
		if err != nil {
			return "", 0, classify(err, "upload.next_part")
		}

		if part.FormName() != FieldName || part.FileName() == "" {
			part.Close()
			continue
		}

		name, n, err := g.store(part)
		part.Close()
		if err != nil {
			return "", 0, err
		}
		return URLPrefix + name, n, nil
	}
}

func (g *Gateway) store(part *multipart.Part) (string, int64, error) {
	ext := filepath.Ext(filepath.Base(part.FileName()))

	var (
		name string
		f    *os.File
		err  error
	)
	for {
		name = part.FormName() + "-" + strconv.FormatInt(g.seq.Next(), 10) + ext
		f, err = os.OpenFile(filepath.Join(g.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", 0, pkgerrors.Wrap(err, "upload.create")
		}
		break
	}

	n, err := io.Copy(f, io.LimitReader(part, g.maxSize+1))
	if err == nil && n > g.maxSize {
		err = ErrTooLarge
	}
	if cerr := f.Close(); err == nil && cerr != nil {
		err = pkgerrors.Wrap(cerr, "upload.close")
	}
	if err != nil {
		os.Remove(f.Name())
		return "", 0, classify(err, "upload.write")
	}
	return name, n, nil
}

func classify(err error, op string) error {
	if errors.Is(err, ErrTooLarge) {
		return ErrTooLarge
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return ErrTooLarge
	}
	return pkgerrors.Wrap(err, op)
}

// FileServer serves stored files by name. Directory paths are not listed.
func (g *Gateway) FileServer() http.Handler {
	files := http.FileServer(http.Dir(g.dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") || path.Clean("/"+r.URL.Path) == "/" {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
