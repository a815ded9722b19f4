package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mbolis/survey-backend/model"
)

const onlineSurveyColumns = "id, surveyNo, surveyTypeId, title, content, status, createDate, updateDate"

// CreateOnlineSurvey inserts a row and reads it back by the generated id, so
// the result carries the defaults assigned by the database. A nil result with
// no error means the fresh row could not be read back.
func (s *Store) CreateOnlineSurvey(ctx context.Context, fields model.OnlineSurveyFields) (*model.OnlineSurvey, error) {
	cols := fields.Columns()
	if len(cols) == 0 {
		return nil, model.ErrNoFields
	}

	query, args := insertStatement("OnlineSurvey", cols)
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, dbError("db.insert_online_survey", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, dbError("db.insert_online_survey.id", err)
	}

	var online model.OnlineSurvey
	err = s.db.GetContext(ctx, &online, "SELECT "+onlineSurveyColumns+" FROM OnlineSurvey WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dbError("db.insert_online_survey.reread", err)
	}
	return &online, nil
}

// UpdateOnlineSurvey updates every row carrying surveyNo, which is not unique.
func (s *Store) UpdateOnlineSurvey(ctx context.Context, surveyNo string, fields model.OnlineSurveyFields) (bool, error) {
	cols := fields.Columns()
	if len(cols) == 0 {
		return false, model.ErrNoFields
	}

	set, args := setClause(cols, "updateDate = CURRENT_TIMESTAMP")
	res, err := s.db.ExecContext(ctx, "UPDATE OnlineSurvey SET "+set+" WHERE surveyNo = ?", append(args, surveyNo)...)
	if err != nil {
		return false, dbError("db.update_online_survey", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, dbError("db.update_online_survey.verify", err)
	}
	return n > 0, nil
}

type surveyOnlineRow struct {
	Survey surveyRow          `db:"survey"`
	Online model.OnlineSurvey `db:"online"`
}

const surveyOnlineQuery = `
	SELECT
		s.id AS ` + "`survey.id`" + `,
		s.title AS ` + "`survey.title`" + `,
		s.description AS ` + "`survey.description`" + `,
		s.content AS ` + "`survey.content`" + `,
		s.status AS ` + "`survey.status`" + `,
		s.createDate AS ` + "`survey.createDate`" + `,
		s.updateDate AS ` + "`survey.updateDate`" + `,
		o.id AS ` + "`online.id`" + `,
		o.surveyNo AS ` + "`online.surveyNo`" + `,
		o.surveyTypeId AS ` + "`online.surveyTypeId`" + `,
		o.title AS ` + "`online.title`" + `,
		o.content AS ` + "`online.content`" + `,
		o.status AS ` + "`online.status`" + `,
		o.createDate AS ` + "`online.createDate`" + `,
		o.updateDate AS ` + "`online.updateDate`" + `
	FROM Survey s
	INNER JOIN OnlineSurvey o ON (s.id = o.surveyTypeId)
	WHERE o.surveyNo = ?
	ORDER BY o.id`

// GetSurveyAndOnlineSurveyBySurveyNo returns every joined row for surveyNo.
// Each side keeps its own columns, so the two ids never overwrite each other.
func (s *Store) GetSurveyAndOnlineSurveyBySurveyNo(ctx context.Context, surveyNo string) ([]model.SurveyOnline, error) {
	var rows []surveyOnlineRow
	err := s.db.SelectContext(ctx, &rows, surveyOnlineQuery, surveyNo)
	if err != nil {
		return nil, dbError("db.get_survey_online", err)
	}

	results := make([]model.SurveyOnline, len(rows))
	for i, row := range rows {
		results[i] = model.SurveyOnline{
			Survey:       s.toSurvey(row.Survey),
			OnlineSurvey: row.Online,
		}
	}
	return results, nil
}
