package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPeriod(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       string
	}{
		{"open ended", "2021-03-01", "", "Mar 2021 – Present"},
		{"closed range", "2019-06", "2021-02-15", "Jun 2019 – Feb 2021"},
		{"year only passes through", "2018", "2020", "2018 – 2020"},
		{"no dates", "", "", ""},
		{"end only", "", "2020-01", "Jan 2020"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPeriod(tt.start, tt.end))
		})
	}
}

func TestSiteSettingsWithDefaults(t *testing.T) {
	s := SiteSettings{}.WithDefaults()
	assert.Equal(t, DefaultSiteTitle, s.Title)
	assert.NotNil(t, s.Socials)

	s = SiteSettings{Title: "Ada Lovelace"}.WithDefaults()
	assert.Equal(t, "Ada Lovelace", s.Title)
}
