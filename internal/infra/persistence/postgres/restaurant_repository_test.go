package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern(t *testing.T) {
	tests := []struct {
		name string
		term string
		want string
	}{
		{name: "plain term", term: "koshary", want: "%koshary%"},
		{name: "percent matches literally", term: "100%", want: `%100\%%`},
		{name: "underscore matches literally", term: "a_b", want: `%a\_b%`},
		{name: "backslash escaped first", term: `a\b`, want: `%a\\b%`},
		{name: "mixed metacharacters", term: `50%_off\`, want: `%50\%\_off\\%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, likePattern(tt.term))
		})
	}
}
