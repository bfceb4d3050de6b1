package database

import (
	"database/sql"

	"github.com/SshartakK/AssignMate/app/models"
)

func CreateComment(db *sql.DB, comment *models.Comment) error {
	return db.QueryRow(
		`INSERT INTO comments (homework_id, name, email, body)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, active, created_at, updated_at`,
		comment.HomeworkID, comment.Name, comment.Email, comment.Body,
	).Scan(&comment.ID, &comment.Active, &comment.CreatedAt, &comment.UpdatedAt)
}

// GetActiveComments returns the visible comments of a homework, oldest first.
func GetActiveComments(db *sql.DB, homeworkID string) ([]*models.Comment, error) {
	rows, err := db.Query(
		`SELECT id, homework_id, name, email, body, active, created_at, updated_at
		 FROM comments
		 WHERE homework_id = $1 AND active = true
		 ORDER BY created_at ASC`,
		homeworkID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		c := &models.Comment{}
		err := rows.Scan(&c.ID, &c.HomeworkID, &c.Name, &c.Email, &c.Body,
			&c.Active, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
