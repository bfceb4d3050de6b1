package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "HW1", "hw1"},
		{"spaces", "Linear Algebra Basics", "linear-algebra-basics"},
		{"punctuation", "What's new?!", "what-s-new"},
		{"collapses separators", "a  --  b", "a-b"},
		{"trims edges", "  trimmed  ", "trimmed"},
		{"keeps unicode letters", "Домашнее задание 1", "домашнее-задание-1"},
		{"mixed scripts", "Matte prov: Åk 9", "matte-prov-åk-9"},
		{"underscore kept", "unit_one", "unit_one"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}
