package sitemap

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SshartakK/AssignMate/app/models"
)

func TestBuild(t *testing.T) {
	homeworks := []*models.Homework{
		{
			Slug:      "hw1",
			Publish:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 9, 3, 8, 30, 0, 0, time.UTC),
		},
		{
			Slug:      "hw2",
			Publish:   time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC),
		},
	}

	body, err := Build("http://localhost:3000", homeworks)
	require.NoError(t, err)

	var set URLSet
	require.NoError(t, xml.Unmarshal(body, &set))
	require.Len(t, set.URLs, 2)

	assert.Equal(t, "http://localhost:3000/homeworks/2026/9/1/hw1", set.URLs[0].Loc)
	assert.Equal(t, "2026-09-03", set.URLs[0].LastMod)
	assert.Equal(t, "weekly", set.URLs[0].ChangeFreq)
	assert.Equal(t, 0.9, set.URLs[0].Priority)
	assert.Equal(t, "http://localhost:3000/homeworks/2026/8/15/hw2", set.URLs[1].Loc)
}

func TestBuildEmpty(t *testing.T) {
	body, err := Build("http://localhost:3000", nil)
	require.NoError(t, err)
	assert.Contains(t, string(body), "urlset")
}
