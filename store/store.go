package store

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/mbolis/survey-backend/model"
)

const DefaultDateLayout = "2006/1/2 15:04:05"

// Store provides manual-SQL data access to the Survey and OnlineSurvey tables.
// Every statement runs on its own; nothing is wrapped in a transaction.
type Store struct {
	db         *sqlx.DB
	dateLayout string
	location   *time.Location
}

type Option func(*Store)

func WithDateLayout(layout string) Option {
	return func(s *Store) {
		if layout != "" {
			s.dateLayout = layout
		}
	}
}

func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.location = loc
		}
	}
}

func New(db *sqlx.DB, opts ...Option) *Store {
	s := &Store{
		db:         db,
		dateLayout: DefaultDateLayout,
		location:   time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return dbError("db.ping", err)
	}
	return nil
}

func (s *Store) formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(s.location).Format(s.dateLayout)
}

func dbError(op string, err error) error {
	return &DatabaseError{Op: op, Err: errors.WithStack(err)}
}

func insertStatement(table string, cols []model.Column) (string, []any) {
	names := make([]string, len(cols))
	marks := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		names[i] = c.Name
		marks[i] = "?"
		args[i] = c.Value
	}
	query := "INSERT INTO " + table + " (" + strings.Join(names, ", ") + ") VALUES (" + strings.Join(marks, ", ") + ")"
	return query, args
}

// setClause renders "a = ?, b = ?" plus the matching arguments. Extra raw
// assignments (no placeholder) are appended as-is.
func setClause(cols []model.Column, raw ...string) (string, []any) {
	parts := make([]string, 0, len(cols)+len(raw))
	args := make([]any, 0, len(cols))
	for _, c := range cols {
		parts = append(parts, c.Name+" = ?")
		args = append(args, c.Value)
	}
	parts = append(parts, raw...)
	return strings.Join(parts, ", "), args
}
