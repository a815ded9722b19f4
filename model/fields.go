package model

import "errors"

var ErrNoFields = errors.New("no fields to write")

// Column is a single column assignment. Names always come from this package.
type Column struct {
	Name  string
	Value any
}

// SurveyFields is the set of writable Survey columns. Nil members are left
// untouched.
type SurveyFields struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Content     *string `json:"content" validate:"omitempty,json"`
	Status      *int    `json:"status" validate:"omitempty,min=0"`
}

func (f SurveyFields) Columns() []Column {
	var cols []Column
	if f.Title != nil {
		cols = append(cols, Column{"title", *f.Title})
	}
	if f.Description != nil {
		cols = append(cols, Column{"description", *f.Description})
	}
	if f.Content != nil {
		cols = append(cols, Column{"content", *f.Content})
	}
	if f.Status != nil {
		cols = append(cols, Column{"status", *f.Status})
	}
	return cols
}

// OnlineSurveyFields is the set of writable OnlineSurvey columns.
type OnlineSurveyFields struct {
	SurveyNo     *string `json:"surveyNo" validate:"omitempty,min=1,max=64"`
	SurveyTypeID *int64  `json:"surveyTypeId" validate:"omitempty,min=1"`
	Title        *string `json:"title" validate:"omitempty,max=255"`
	Content      *string `json:"content" validate:"omitempty,json"`
	Status       *int    `json:"status" validate:"omitempty,min=0"`
}

func (f OnlineSurveyFields) Columns() []Column {
	var cols []Column
	if f.SurveyNo != nil {
		cols = append(cols, Column{"surveyNo", *f.SurveyNo})
	}
	if f.SurveyTypeID != nil {
		cols = append(cols, Column{"surveyTypeId", *f.SurveyTypeID})
	}
	if f.Title != nil {
		cols = append(cols, Column{"title", *f.Title})
	}
	if f.Content != nil {
		cols = append(cols, Column{"content", *f.Content})
	}
	if f.Status != nil {
		cols = append(cols, Column{"status", *f.Status})
	}
	return cols
}
