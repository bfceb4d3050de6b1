package sitemap

import (
	"encoding/xml"

	"github.com/SshartakK/AssignMate/app/models"
)

// URLSet is the sitemap.org urlset document.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

type URL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

// Build renders the sitemap for the published homeworks: last modification
// from updated_at, weekly change frequency, priority 0.9.
func Build(baseURL string, homeworks []*models.Homework) ([]byte, error) {
	set := URLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]URL, 0, len(homeworks)),
	}
	for _, h := range homeworks {
		set.URLs = append(set.URLs, URL{
			Loc:        baseURL + h.URL(),
			LastMod:    h.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   0.9,
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
