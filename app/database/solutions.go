package database

import (
	"database/sql"

	"github.com/SshartakK/AssignMate/app/models"
)

const solutionColumns = `s.id, s.homework_id, s.student_id, s.answer_text,
	s.answer_pdf, s.grade, s.teacher_comment, s.created_at, s.updated_at`

func scanSolution(scan func(dest ...any) error) (*models.HomeworkSolution, error) {
	s := &models.HomeworkSolution{}
	var (
		pdf     sql.NullString
		grade   sql.NullInt64
		comment sql.NullString
	)
	err := scan(&s.ID, &s.HomeworkID, &s.StudentID, &s.AnswerText,
		&pdf, &grade, &comment, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.AnswerPDF = pdf.String
	s.TeacherComment = comment.String
	if grade.Valid {
		g := int(grade.Int64)
		s.Grade = &g
	}
	return s, nil
}

func CreateSolution(db *sql.DB, s *models.HomeworkSolution) error {
	var pdf any
	if s.AnswerPDF != "" {
		pdf = s.AnswerPDF
	}
	return db.QueryRow(
		`INSERT INTO homework_solutions (homework_id, student_id, answer_text, answer_pdf)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		s.HomeworkID, s.StudentID, s.AnswerText, pdf,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// GetSolutionsByHomework returns every solution for a homework together with
// the submitting student. Teacher view.
func GetSolutionsByHomework(db *sql.DB, homeworkID string) ([]*models.HomeworkSolution, error) {
	rows, err := db.Query(
		`SELECT `+solutionColumns+`, u.username, u.first_name, u.last_name
		 FROM homework_solutions s
		 JOIN users u ON u.id = s.student_id
		 WHERE s.homework_id = $1
		 ORDER BY s.created_at ASC`,
		homeworkID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var solutions []*models.HomeworkSolution
	for rows.Next() {
		s := &models.HomeworkSolution{Student: &models.User{}}
		var (
			pdf     sql.NullString
			grade   sql.NullInt64
			comment sql.NullString
		)
		err := rows.Scan(&s.ID, &s.HomeworkID, &s.StudentID, &s.AnswerText,
			&pdf, &grade, &comment, &s.CreatedAt, &s.UpdatedAt,
			&s.Student.Username, &s.Student.FirstName, &s.Student.LastName)
		if err != nil {
			return nil, err
		}
		s.AnswerPDF = pdf.String
		s.TeacherComment = comment.String
		if grade.Valid {
			g := int(grade.Int64)
			s.Grade = &g
		}
		s.Student.ID = s.StudentID
		solutions = append(solutions, s)
	}
	return solutions, rows.Err()
}

// GetSolutionsByStudent returns the student's own solutions for a homework.
func GetSolutionsByStudent(db *sql.DB, homeworkID, studentID string) ([]*models.HomeworkSolution, error) {
	rows, err := db.Query(
		`SELECT `+solutionColumns+` FROM homework_solutions s
		 WHERE s.homework_id = $1 AND s.student_id = $2
		 ORDER BY s.created_at ASC`,
		homeworkID, studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var solutions []*models.HomeworkSolution
	for rows.Next() {
		s, err := scanSolution(rows.Scan)
		if err != nil {
			return nil, err
		}
		solutions = append(solutions, s)
	}
	return solutions, rows.Err()
}

func CountSolutionsByStudent(db *sql.DB, homeworkID, studentID string) (int, error) {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM homework_solutions WHERE homework_id = $1 AND student_id = $2`,
		homeworkID, studentID,
	).Scan(&count)
	return count, err
}

// GetOwnedSolutionByID looks up a solution belonging to the student.
func GetOwnedSolutionByID(db *sql.DB, solutionID, studentID string) (*models.HomeworkSolution, error) {
	row := db.QueryRow(
		`SELECT `+solutionColumns+` FROM homework_solutions s
		 WHERE s.id = $1 AND s.student_id = $2`,
		solutionID, studentID,
	)
	return scanSolution(row.Scan)
}

// GetReviewableSolutionByID looks up a solution whose homework's course was
// created by the given teacher, with the homework attached for the redirect
// back to its natural-key URL.
func GetReviewableSolutionByID(db *sql.DB, solutionID, courseCreatorID string) (*models.HomeworkSolution, error) {
	row := db.QueryRow(
		`SELECT `+solutionColumns+`, `+homeworkColumns+`
		 FROM homework_solutions s
		 JOIN homeworks h ON h.id = s.homework_id
		 JOIN courses c ON c.id = h.course_id
		 WHERE s.id = $1 AND c.creator_id = $2`,
		solutionID, courseCreatorID,
	)

	s := &models.HomeworkSolution{Homework: &models.Homework{}}
	var (
		pdf     sql.NullString
		grade   sql.NullInt64
		comment sql.NullString
		hwPDF   sql.NullString
	)
	h := s.Homework
	err := row.Scan(&s.ID, &s.HomeworkID, &s.StudentID, &s.AnswerText,
		&pdf, &grade, &comment, &s.CreatedAt, &s.UpdatedAt,
		&h.ID, &h.Title, &h.Slug, &h.AuthorID, &h.CourseID, &h.Body,
		&hwPDF, &h.Publish, &h.Status, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.AnswerPDF = pdf.String
	s.TeacherComment = comment.String
	if grade.Valid {
		g := int(grade.Int64)
		s.Grade = &g
	}
	h.PDF = hwPDF.String
	return s, nil
}

func DeleteSolution(db *sql.DB, solutionID string) error {
	_, err := db.Exec(`DELETE FROM homework_solutions WHERE id = $1`, solutionID)
	return err
}

func UpdateSolutionReview(db *sql.DB, solutionID string, grade int, teacherComment string) error {
	_, err := db.Exec(
		`UPDATE homework_solutions
		 SET grade = $1, teacher_comment = $2, updated_at = NOW()
		 WHERE id = $3`,
		grade, teacherComment, solutionID,
	)
	return err
}
