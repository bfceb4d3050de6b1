package database

import (
	"database/sql"
	"fmt"

	"github.com/SshartakK/AssignMate/app/models"
)

// HomeworkFilters represents the scoping options for homework listings.
// Exactly one of AuthorID / StudentID is set: teachers see homeworks they
// authored, students see homeworks of courses they are enrolled in.
type HomeworkFilters struct {
	AuthorID  string
	StudentID string
	Tag       string
	Limit     int
	Offset    int
}

const homeworkColumns = `h.id, h.title, h.slug, h.author_id, h.course_id, h.body,
	h.pdf, h.publish, h.status, h.created_at, h.updated_at`

func scanHomework(scan func(dest ...any) error) (*models.Homework, error) {
	h := &models.Homework{}
	var pdf sql.NullString
	err := scan(&h.ID, &h.Title, &h.Slug, &h.AuthorID, &h.CourseID, &h.Body,
		&pdf, &h.Publish, &h.Status, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	h.PDF = pdf.String
	return h, nil
}

func buildHomeworkScope(f HomeworkFilters, args *[]any) string {
	var where string
	if f.AuthorID != "" {
		*args = append(*args, f.AuthorID)
		where = fmt.Sprintf("h.author_id = $%d", len(*args))
	} else {
		*args = append(*args, f.StudentID)
		where = fmt.Sprintf(
			"h.course_id IN (SELECT course_id FROM enrollments WHERE student_id = $%d)",
			len(*args))
	}
	if f.Tag != "" {
		*args = append(*args, f.Tag)
		where += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM homework_tags ht JOIN tags t ON t.id = ht.tag_id
			WHERE ht.homework_id = h.id AND t.name = $%d)`, len(*args))
	}
	return where
}

// CountHomeworks returns the number of homeworks visible under the filters.
func CountHomeworks(db *sql.DB, f HomeworkFilters) (int, error) {
	var args []any
	where := buildHomeworkScope(f, &args)

	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM homeworks h WHERE `+where, args...).Scan(&count)
	return count, err
}

// ListHomeworks returns one page of homeworks visible under the filters,
// newest first.
func ListHomeworks(db *sql.DB, f HomeworkFilters) ([]*models.Homework, error) {
	var args []any
	where := buildHomeworkScope(f, &args)
	args = append(args, f.Limit, f.Offset)

	query := fmt.Sprintf(`SELECT %s FROM homeworks h WHERE %s
		ORDER BY h.publish DESC LIMIT $%d OFFSET $%d`,
		homeworkColumns, where, len(args)-1, len(args))

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var homeworks []*models.Homework
	for rows.Next() {
		h, err := scanHomework(rows.Scan)
		if err != nil {
			return nil, err
		}
		homeworks = append(homeworks, h)
	}
	return homeworks, rows.Err()
}

// GetHomeworkByNaturalKey looks a homework up by publish date plus slug.
func GetHomeworkByNaturalKey(db *sql.DB, year, month, day int, slug string) (*models.Homework, error) {
	row := db.QueryRow(
		`SELECT `+homeworkColumns+` FROM homeworks h
		 WHERE h.slug = $1
		   AND EXTRACT(YEAR FROM h.publish) = $2
		   AND EXTRACT(MONTH FROM h.publish) = $3
		   AND EXTRACT(DAY FROM h.publish) = $4`,
		slug, year, month, day,
	)
	return scanHomework(row.Scan)
}

func GetHomeworkByID(db *sql.DB, homeworkID string) (*models.Homework, error) {
	row := db.QueryRow(`SELECT `+homeworkColumns+` FROM homeworks h WHERE h.id = $1`, homeworkID)
	return scanHomework(row.Scan)
}

// GetPublishedHomeworkByID looks up a homework that is visible to non-owners.
func GetPublishedHomeworkByID(db *sql.DB, homeworkID string) (*models.Homework, error) {
	row := db.QueryRow(
		`SELECT `+homeworkColumns+` FROM homeworks h WHERE h.id = $1 AND h.status = $2`,
		homeworkID, models.StatusPublished,
	)
	return scanHomework(row.Scan)
}

// GetOwnedHomeworkByID looks up a homework whose course was created by the
// given user. Used by the delete flow; a miss means not found, not forbidden.
func GetOwnedHomeworkByID(db *sql.DB, homeworkID, courseCreatorID string) (*models.Homework, error) {
	row := db.QueryRow(
		`SELECT `+homeworkColumns+` FROM homeworks h
		 JOIN courses c ON c.id = h.course_id
		 WHERE h.id = $1 AND c.creator_id = $2`,
		homeworkID, courseCreatorID,
	)
	return scanHomework(row.Scan)
}

// CreateHomework inserts the homework and attaches its tags in one transaction.
func CreateHomework(db *sql.DB, h *models.Homework) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var pdf any
	if h.PDF != "" {
		pdf = h.PDF
	}
	err = tx.QueryRow(
		`INSERT INTO homeworks (title, slug, author_id, course_id, body, pdf, publish, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		h.Title, h.Slug, h.AuthorID, h.CourseID, h.Body, pdf, h.Publish, h.Status,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return err
	}

	if err := setHomeworkTags(tx, h.ID, h.Tags); err != nil {
		return err
	}
	return tx.Commit()
}

func DeleteHomework(db *sql.DB, homeworkID string) error {
	_, err := db.Exec(`DELETE FROM homeworks WHERE id = $1`, homeworkID)
	return err
}

func GetHomeworksByCourse(db *sql.DB, courseID string) ([]*models.Homework, error) {
	rows, err := db.Query(
		`SELECT `+homeworkColumns+` FROM homeworks h
		 WHERE h.course_id = $1 ORDER BY h.publish DESC`,
		courseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var homeworks []*models.Homework
	for rows.Next() {
		h, err := scanHomework(rows.Scan)
		if err != nil {
			return nil, err
		}
		homeworks = append(homeworks, h)
	}
	return homeworks, rows.Err()
}

// CountPublishedHomeworks backs the total-homeworks template helper.
func CountPublishedHomeworks(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM homeworks WHERE status = $1`, models.StatusPublished,
	).Scan(&count)
	return count, err
}

// LatestPublishedForStudent backs the latest-homeworks widget: the newest
// published homeworks across the student's enrolled courses.
func LatestPublishedForStudent(db *sql.DB, studentID string, limit int) ([]*models.Homework, error) {
	rows, err := db.Query(
		`SELECT `+homeworkColumns+` FROM homeworks h
		 WHERE h.status = $1
		   AND h.course_id IN (SELECT course_id FROM enrollments WHERE student_id = $2)
		 ORDER BY h.publish DESC LIMIT $3`,
		models.StatusPublished, studentID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var homeworks []*models.Homework
	for rows.Next() {
		h, err := scanHomework(rows.Scan)
		if err != nil {
			return nil, err
		}
		homeworks = append(homeworks, h)
	}
	return homeworks, rows.Err()
}

// ListPublishedHomeworks returns every published homework, for the sitemap.
func ListPublishedHomeworks(db *sql.DB) ([]*models.Homework, error) {
	rows, err := db.Query(
		`SELECT `+homeworkColumns+` FROM homeworks h
		 WHERE h.status = $1 ORDER BY h.publish DESC`,
		models.StatusPublished,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var homeworks []*models.Homework
	for rows.Next() {
		h, err := scanHomework(rows.Scan)
		if err != nil {
			return nil, err
		}
		homeworks = append(homeworks, h)
	}
	return homeworks, rows.Err()
}
