package database

import (
	"database/sql"
	"strings"

	"github.com/lib/pq"

	"github.com/SshartakK/AssignMate/app/models"
)

// NormalizeTags lower-cases, trims and deduplicates labels, preserving the
// order of first appearance.
func NormalizeTags(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	var out []string
	for _, label := range labels {
		name := strings.ToLower(strings.TrimSpace(label))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// ParseTags splits a comma-separated tag input into normalized labels.
func ParseTags(input string) []string {
	return NormalizeTags(strings.Split(input, ","))
}

func setHomeworkTags(tx *sql.Tx, homeworkID string, labels []string) error {
	for _, name := range NormalizeTags(labels) {
		var tagID string
		err := tx.QueryRow(
			`INSERT INTO tags (name) VALUES ($1)
			 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			 RETURNING id`,
			name,
		).Scan(&tagID)
		if err != nil {
			return err
		}
		_, err = tx.Exec(
			`INSERT INTO homework_tags (homework_id, tag_id) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			homeworkID, tagID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func GetTagsForHomework(db *sql.DB, homeworkID string) ([]string, error) {
	rows, err := db.Query(
		`SELECT t.name FROM tags t
		 JOIN homework_tags ht ON ht.tag_id = t.id
		 WHERE ht.homework_id = $1 ORDER BY t.name`,
		homeworkID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// TagExists reports whether any homework carries the tag; the list view
// treats a filter on an unknown tag as not found.
func TagExists(db *sql.DB, name string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM tags WHERE name = $1)`, name).Scan(&exists)
	return exists, err
}

// AttachTags fills the Tags field of each homework in one query.
func AttachTags(db *sql.DB, homeworks []*models.Homework) error {
	if len(homeworks) == 0 {
		return nil
	}
	byID := make(map[string]*models.Homework, len(homeworks))
	ids := make([]string, 0, len(homeworks))
	for _, h := range homeworks {
		byID[h.ID] = h
		ids = append(ids, h.ID)
	}

	rows, err := db.Query(
		`SELECT ht.homework_id, t.name FROM homework_tags ht
		 JOIN tags t ON t.id = ht.tag_id
		 WHERE ht.homework_id = ANY($1)
		 ORDER BY t.name`,
		pq.Array(ids),
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var homeworkID, name string
		if err := rows.Scan(&homeworkID, &name); err != nil {
			return err
		}
		if h := byID[homeworkID]; h != nil {
			h.Tags = append(h.Tags, name)
		}
	}
	return rows.Err()
}
