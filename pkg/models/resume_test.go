package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		current bool
		want    string
	}{
		{"start and end", "2019", "2022", false, "2019 -- 2022"},
		{"current overrides end", "2020", "2023", true, "2020 -- Present"},
		{"current without end", "2020", "", true, "2020 -- Present"},
		{"start only", "2021", "", false, "2021"},
		{"end only", "", "2022", false, "2022"},
		{"current only", "", "", true, "Present"},
		{"empty", "", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateRange(tt.start, tt.end, tt.current))
		})
	}
}

func TestHasSkills(t *testing.T) {
	r := &ResumeRecord{}
	assert.False(t, r.HasSkills())

	r.Skills = map[string][]string{"Languages": {}}
	assert.False(t, r.HasSkills())

	r.Skills["Databases"] = []string{"PostgreSQL"}
	assert.True(t, r.HasSkills())
}
