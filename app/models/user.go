package models

import "time"

type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Profile     *Profile  `json:"profile,omitempty"`
}

// Profile extends User with role, avatar and bio. Created in the same
// transaction as its user; never exists on its own.
type Profile struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	Avatar    string    `json:"avatar"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsTeacher reports whether the user carries a teacher profile. Safe on a
// nil user, which stands for an anonymous visitor.
func (u *User) IsTeacher() bool {
	return u != nil && u.Profile != nil && u.Profile.Role == RoleTeacher
}

// IsStudent reports whether the user carries a student profile. Safe on a
// nil user.
func (u *User) IsStudent() bool {
	return u != nil && u.Profile != nil && u.Profile.Role == RoleStudent
}
