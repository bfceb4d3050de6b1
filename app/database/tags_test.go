package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" Algebra ", "algebra", "GEOMETRY", "", "  ", "geometry"})
	assert.Equal(t, []string{"algebra", "geometry"}, got)
}

func TestNormalizeTagsEmpty(t *testing.T) {
	assert.Nil(t, NormalizeTags(nil))
	assert.Nil(t, NormalizeTags([]string{"", "   "}))
}

func TestParseTags(t *testing.T) {
	got := ParseTags("Algebra, equations ,ALGEBRA,, week-1")
	assert.Equal(t, []string{"algebra", "equations", "week-1"}, got)
}
