// file: internals/helpers/search_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchPattern(t *testing.T) {
	tests := []struct {
		name string
		term string
		want string
	}{
		{name: "plain", term: "annex", want: "%annex%"},
		{name: "uppercase folded", term: "MAIN HALL", want: "%main hall%"},
		{name: "mixed case folded", term: "Dr. Siti", want: "%dr. siti%"},
		{name: "surrounding space trimmed", term: "  cs101 ", want: "%cs101%"},
		{name: "empty", term: "", want: "%%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SearchPattern(tt.term))
		})
	}
}
