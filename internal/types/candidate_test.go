package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestWorkExperience_Months(t *testing.T) {
	tests := []struct {
		name string
		exp  WorkExperience
		want int
	}{
		{
			name: "closed span",
			exp:  WorkExperience{StartDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: datePtr(2024, 7, 1)},
			want: 18,
		},
		{
			name: "current position measured to now",
			exp:  WorkExperience{StartDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), IsCurrent: true},
			want: 12,
		},
		{
			name: "current flag wins over stale end date",
			exp:  WorkExperience{StartDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), EndDate: datePtr(2025, 9, 1), IsCurrent: true},
			want: 12,
		},
		{
			name: "end before start clamps to zero",
			exp:  WorkExperience{StartDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), EndDate: datePtr(2024, 1, 1)},
			want: 0,
		},
		{
			name: "no end date and not current measures to now",
			exp:  WorkExperience{StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
			want: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.exp.Months(now))
		})
	}
}

func TestCandidateProfile_TotalExperienceMonths(t *testing.T) {
	c := CandidateProfile{
		Experiences: []WorkExperience{
			{StartDate: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: datePtr(2023, 1, 1)},
			{StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), IsCurrent: true},
		},
	}
	assert.Equal(t, 12+31, c.TotalExperienceMonths(now))

	empty := CandidateProfile{}
	assert.Equal(t, 0, empty.TotalExperienceMonths(now))
}

func TestCandidateProfile_Links(t *testing.T) {
	c := CandidateProfile{GithubURL: "https://github.com/x"}
	assert.True(t, c.HasGithub())
	assert.False(t, c.HasLinkedin())
}

func TestLabelForScore(t *testing.T) {
	tests := []struct {
		score int
		want  MatchLabel
	}{
		{100, LabelExcellent},
		{85, LabelExcellent},
		{84, LabelVeryGood},
		{70, LabelVeryGood},
		{69, LabelGood},
		{55, LabelGood},
		{54, LabelFair},
		{40, LabelFair},
		{39, LabelWeak},
		{0, LabelWeak},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelForScore(tt.score), "score %d", tt.score)
	}
}
