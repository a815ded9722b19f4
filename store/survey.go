package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mbolis/survey-backend/model"
)

const surveyColumns = "id, title, description, content, status, createDate, updateDate"

type surveyRow struct {
	ID          int64     `db:"id"`
	Title       *string   `db:"title"`
	Description *string   `db:"description"`
	Content     *string   `db:"content"`
	Status      int       `db:"status"`
	CreateDate  time.Time `db:"createDate"`
	UpdateDate  time.Time `db:"updateDate"`
}

func (s *Store) toSurvey(row surveyRow) model.Survey {
	return model.Survey{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Content:     row.Content,
		Status:      row.Status,
		CreateDate:  s.formatDate(row.CreateDate),
		UpdateDate:  s.formatDate(row.UpdateDate),
	}
}

func (s *Store) ListSurveys(ctx context.Context) ([]model.Survey, error) {
	var rows []surveyRow
	err := s.db.SelectContext(ctx, &rows, "SELECT "+surveyColumns+" FROM Survey")
	if err != nil {
		return nil, dbError("db.get_surveys", err)
	}

	surveys := make([]model.Survey, len(rows))
	for i, row := range rows {
		surveys[i] = s.toSurvey(row)
	}
	return surveys, nil
}

// GetSurvey returns nil without error when no row matches id.
func (s *Store) GetSurvey(ctx context.Context, id int64) (*model.Survey, error) {
	var row surveyRow
	err := s.db.GetContext(ctx, &row, "SELECT "+surveyColumns+" FROM Survey WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dbError("db.get_survey", err)
	}

	survey := s.toSurvey(row)
	return &survey, nil
}

func (s *Store) CreateSurvey(ctx context.Context, fields model.SurveyFields) (int64, error) {
	cols := fields.Columns()
	if len(cols) == 0 {
		return 0, model.ErrNoFields
	}

	query, args := insertStatement("Survey", cols)
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, dbError("db.insert_survey", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, dbError("db.insert_survey.id", err)
	}
	return id, nil
}

// UpdateSurvey reports false when no row matches id.
func (s *Store) UpdateSurvey(ctx context.Context, id int64, fields model.SurveyFields) (bool, error) {
	cols := fields.Columns()
	if len(cols) == 0 {
		return false, model.ErrNoFields
	}

	set, args := setClause(cols, "updateDate = CURRENT_TIMESTAMP")
	res, err := s.db.ExecContext(ctx, "UPDATE Survey SET "+set+" WHERE id = ?", append(args, id)...)
	if err != nil {
		return false, dbError("db.update_survey", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, dbError("db.update_survey.verify", err)
	}
	return n > 0, nil
}

func (s *Store) DeleteSurvey(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM Survey WHERE id = ?", id)
	if err != nil {
		return false, dbError("db.delete_survey", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, dbError("db.delete_survey.verify", err)
	}
	return n > 0, nil
}
