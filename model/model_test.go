package model

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestColumnsSkipNil(t *testing.T) {
	cols := SurveyFields{Title: ptr("t"), Status: ptr(0)}.Columns()
	assert.Equal(t, []Column{{"title", "t"}, {"status", 0}}, cols)

	cols = OnlineSurveyFields{SurveyNo: ptr("A1"), SurveyTypeID: ptr(int64(5))}.Columns()
	assert.Equal(t, []Column{{"surveyNo", "A1"}, {"surveyTypeId", int64(5)}}, cols)

	assert.Empty(t, SurveyFields{}.Columns())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		fields fieldSet
		field  string
	}{
		{"title too long", SurveyFields{Title: ptr(strings.Repeat("x", 256))}, "title"},
		{"content not json", SurveyFields{Content: ptr("{")}, "content"},
		{"negative status", SurveyFields{Status: ptr(-1)}, "status"},
		{"survey type negative", OnlineSurveyFields{SurveyTypeID: ptr(int64(-3))}, "surveyTypeId"},
		{"survey no too long", OnlineSurveyFields{SurveyNo: ptr(strings.Repeat("9", 65))}, "surveyNo"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.fields)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tc.field, verrs[0].Field())
		})
	}
}

func TestValidateAccepts(t *testing.T) {
	assert.NoError(t, Validate(SurveyFields{
		Title:   ptr("ok"),
		Content: ptr(`{"questions":[{"type":"radio"}]}`),
		Status:  ptr(1),
	}))
	assert.NoError(t, Validate(OnlineSurveyFields{SurveyNo: ptr("A1"), SurveyTypeID: ptr(int64(5))}))
}

func TestValidateNoFields(t *testing.T) {
	assert.ErrorIs(t, Validate(SurveyFields{}), ErrNoFields)
	assert.ErrorIs(t, Validate(OnlineSurveyFields{}), ErrNoFields)
}
