package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema when missing and applies updates.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(100) NOT NULL UNIQUE,
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			is_superuser BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS profiles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
			role VARCHAR(10) NOT NULL CHECK (role IN ('student', 'teacher')),
			avatar VARCHAR(255) NOT NULL DEFAULT 'default.jpg',
			bio TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS courses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title VARCHAR(250) NOT NULL,
			slug VARCHAR(250) NOT NULL,
			creator_id UUID REFERENCES users(id) ON DELETE CASCADE,
			publish TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			status VARCHAR(2) NOT NULL DEFAULT 'DF' CHECK (status IN ('DF', 'PB')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		// slug is unique within its publish month
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_courses_slug_month
			ON courses (slug, date_trunc('month', publish))`,
		`CREATE INDEX IF NOT EXISTS idx_courses_publish ON courses (publish DESC)`,

		// intentionally no UNIQUE(student_id, course_id); duplicate
		// enrollments are accepted pending a decision on the semantics
		`CREATE TABLE IF NOT EXISTS enrollments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			course_id UUID NOT NULL REFERENCES courses(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_enrollments_student ON enrollments (student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_enrollments_course ON enrollments (course_id)`,

		`CREATE TABLE IF NOT EXISTS homeworks (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title VARCHAR(250) NOT NULL,
			slug VARCHAR(250) NOT NULL,
			author_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			course_id UUID NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
			body TEXT NOT NULL,
			pdf VARCHAR(255),
			publish TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			status VARCHAR(2) NOT NULL DEFAULT 'PB' CHECK (status IN ('DF', 'PB')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		// slug is unique within its publish day
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_homeworks_slug_day
			ON homeworks (slug, date_trunc('day', publish))`,
		`CREATE INDEX IF NOT EXISTS idx_homeworks_publish ON homeworks (publish DESC)`,

		`CREATE TABLE IF NOT EXISTS tags (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS homework_tags (
			homework_id UUID NOT NULL REFERENCES homeworks(id) ON DELETE CASCADE,
			tag_id UUID NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
			UNIQUE (homework_id, tag_id)
		)`,

		`CREATE TABLE IF NOT EXISTS comments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			homework_id UUID NOT NULL REFERENCES homeworks(id) ON DELETE CASCADE,
			name VARCHAR(80) NOT NULL,
			email VARCHAR(255) NOT NULL,
			body TEXT NOT NULL,
			active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_created ON comments (created_at)`,

		// no one-solution-per-student constraint; the detail view hides the
		// submit form once one exists
		`CREATE TABLE IF NOT EXISTS homework_solutions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			homework_id UUID NOT NULL REFERENCES homeworks(id) ON DELETE CASCADE,
			student_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			answer_text TEXT NOT NULL,
			answer_pdf VARCHAR(255),
			grade INTEGER CHECK (grade >= 0 AND grade <= 100),
			teacher_comment TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_solutions_homework ON homework_solutions (homework_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
