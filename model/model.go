package model

import "time"

// Survey is the read model of a Survey row. Dates are display strings.
type Survey struct {
	ID          int64   `json:"id" db:"id"`
	Title       *string `json:"title" db:"title"`
	Description *string `json:"description" db:"description"`
	Content     *string `json:"content" db:"content"`
	Status      int     `json:"status" db:"status"`
	CreateDate  string  `json:"createDate" db:"-"`
	UpdateDate  string  `json:"updateDate" db:"-"`
}

// OnlineSurvey is a stored OnlineSurvey row, including database defaults.
type OnlineSurvey struct {
	ID           int64      `json:"id" db:"id"`
	SurveyNo     *string    `json:"surveyNo" db:"surveyNo"`
	SurveyTypeID *int64     `json:"surveyTypeId" db:"surveyTypeId"`
	Title        *string    `json:"title" db:"title"`
	Content      *string    `json:"content" db:"content"`
	Status       int        `json:"status" db:"status"`
	CreateDate   *time.Time `json:"createDate" db:"createDate"`
	UpdateDate   *time.Time `json:"updateDate" db:"updateDate"`
}

// SurveyOnline is one row of the Survey/OnlineSurvey join. Both sides keep
// their own id.
type SurveyOnline struct {
	Survey       Survey       `json:"survey"`
	OnlineSurvey OnlineSurvey `json:"onlineSurvey"`
}
