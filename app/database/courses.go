package database

import (
	"database/sql"

	"github.com/SshartakK/AssignMate/app/models"
)

func scanCourses(rows *sql.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		c := &models.Course{}
		var creatorID sql.NullString
		err := rows.Scan(&c.ID, &c.Title, &c.Slug, &creatorID,
			&c.Publish, &c.Status, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		c.CreatorID = creatorID.String
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

const courseColumns = `id, title, slug, creator_id, publish, status, created_at, updated_at`

// GetCoursesByCreator returns courses created by the teacher, newest first.
func GetCoursesByCreator(db *sql.DB, creatorID string) ([]*models.Course, error) {
	rows, err := db.Query(
		`SELECT `+courseColumns+` FROM courses WHERE creator_id = $1 ORDER BY publish DESC`,
		creatorID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourses(rows)
}

// GetCoursesByStudent returns courses the student is enrolled in, newest first.
func GetCoursesByStudent(db *sql.DB, studentID string) ([]*models.Course, error) {
	rows, err := db.Query(
		`SELECT DISTINCT c.id, c.title, c.slug, c.creator_id, c.publish, c.status,
		        c.created_at, c.updated_at
		 FROM courses c
		 JOIN enrollments e ON e.course_id = c.id
		 WHERE e.student_id = $1
		 ORDER BY c.publish DESC`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourses(rows)
}

func GetCourseByID(db *sql.DB, courseID string) (*models.Course, error) {
	c := &models.Course{}
	var creatorID sql.NullString
	err := db.QueryRow(
		`SELECT `+courseColumns+` FROM courses WHERE id = $1`, courseID,
	).Scan(&c.ID, &c.Title, &c.Slug, &creatorID,
		&c.Publish, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.CreatorID = creatorID.String
	return c, nil
}

func CreateCourse(db *sql.DB, course *models.Course) error {
	return db.QueryRow(
		`INSERT INTO courses (title, slug, creator_id, publish, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		course.Title, course.Slug, course.CreatorID, course.Publish, course.Status,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
}

// IsEnrolled reports whether the student has an enrollment for the course.
// Duplicate enrollment rows collapse to the same answer here.
func IsEnrolled(db *sql.DB, courseID, studentID string) (bool, error) {
	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM enrollments WHERE course_id = $1 AND student_id = $2)`,
		courseID, studentID,
	).Scan(&exists)
	return exists, err
}

func CreateEnrollment(db *sql.DB, courseID, studentID string) error {
	_, err := db.Exec(
		`INSERT INTO enrollments (student_id, course_id) VALUES ($1, $2)`,
		studentID, courseID,
	)
	return err
}
