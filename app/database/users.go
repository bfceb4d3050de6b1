package database

import (
	"database/sql"

	"github.com/SshartakK/AssignMate/app/models"
)

// CreateUserWithProfile inserts the user and its profile in one transaction.
// The profile row is an explicit part of registration, not a side effect.
func CreateUserWithProfile(db *sql.DB, user *models.User, role models.Role) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		`INSERT INTO users (username, email, password, first_name, last_name)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		user.Username, user.Email, user.Password, user.FirstName, user.LastName,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return err
	}

	profile := &models.Profile{UserID: user.ID, Role: role}
	err = tx.QueryRow(
		`INSERT INTO profiles (user_id, role) VALUES ($1, $2)
		 RETURNING id, avatar, created_at, updated_at`,
		profile.UserID, profile.Role,
	).Scan(&profile.ID, &profile.Avatar, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return err
	}
	user.Profile = profile

	return tx.Commit()
}

func scanUserWithProfile(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var (
		profileID sql.NullString
		role      sql.NullString
		avatar    sql.NullString
		bio       sql.NullString
	)
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.FirstName, &user.LastName, &user.IsSuperuser,
		&user.CreatedAt, &user.UpdatedAt,
		&profileID, &role, &avatar, &bio,
	)
	if err != nil {
		return nil, err
	}
	if profileID.Valid {
		user.Profile = &models.Profile{
			ID:     profileID.String,
			UserID: user.ID,
			Role:   models.Role(role.String),
			Avatar: avatar.String,
			Bio:    bio.String,
		}
	}
	return user, nil
}

const userWithProfileQuery = `
	SELECT u.id, u.username, u.email, u.password, u.first_name, u.last_name,
	       u.is_superuser, u.created_at, u.updated_at,
	       p.id, p.role, p.avatar, p.bio
	FROM users u
	LEFT JOIN profiles p ON p.user_id = u.id`

func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	return scanUserWithProfile(db.QueryRow(userWithProfileQuery+` WHERE u.username = $1`, username))
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	return scanUserWithProfile(db.QueryRow(userWithProfileQuery+` WHERE u.id = $1`, userID))
}

// UsernameTaken reports whether another user already holds the username.
func UsernameTaken(db *sql.DB, username, excludeUserID string) (bool, error) {
	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 AND id <> $2)`,
		username, excludeUserID,
	).Scan(&exists)
	return exists, err
}

// EmailTaken reports whether another user already holds the email.
func EmailTaken(db *sql.DB, email, excludeUserID string) (bool, error) {
	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`,
		email, excludeUserID,
	).Scan(&exists)
	return exists, err
}

func UpdateUserIdentity(db *sql.DB, userID, username, email string) error {
	_, err := db.Exec(
		`UPDATE users SET username = $1, email = $2, updated_at = NOW() WHERE id = $3`,
		username, email, userID,
	)
	return err
}

func UpdateProfile(db *sql.DB, userID, avatar, bio string) error {
	_, err := db.Exec(
		`UPDATE profiles SET avatar = $1, bio = $2, updated_at = NOW() WHERE user_id = $3`,
		avatar, bio, userID,
	)
	return err
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	_, err := db.Exec(
		`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`,
		hashedPassword, userID,
	)
	return err
}
