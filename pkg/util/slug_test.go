package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "two words", input: "Iced Drinks", want: "iced-drinks"},
		{name: "already a slug", input: "chefs-choice", want: "chefs-choice"},
		{name: "repeated spaces", input: "Hot   Food", want: "hot-food"},
		{name: "tabs and newlines", input: "Tea\tand\nCake", want: "tea-and-cake"},
		{name: "outer whitespace", input: "  Bakery ", want: "bakery"},
		{name: "punctuation kept", input: "Chef's Choice!", want: "chef's-choice!"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}
