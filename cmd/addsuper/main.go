package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/SshartakK/AssignMate/app/config"
	"github.com/SshartakK/AssignMate/app/database"
	"github.com/SshartakK/AssignMate/app/models"
	"github.com/SshartakK/AssignMate/app/routes/auth"
)

// Creates a superuser teacher account. Signup only offers the student and
// teacher roles, so this is the only way to get a superuser.
func main() {
	username := flag.String("username", "", "superuser username")
	email := flag.String("email", "", "superuser email")
	password := flag.String("password", "", "superuser password")
	flag.Parse()

	if *username == "" || *email == "" || *password == "" {
		log.Fatal("usage: addsuper -username ... -email ... -password ...")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Username:  *username,
		Email:     *email,
		Password:  hashed,
		FirstName: "Admin",
		LastName:  "User",
	}
	if err := database.CreateUserWithProfile(db, user, models.RoleTeacher); err != nil {
		log.Fatal("Error creating user: ", err)
	}

	if _, err := db.Exec(`UPDATE users SET is_superuser = true WHERE id = $1`, user.ID); err != nil {
		log.Fatal("Error promoting user: ", err)
	}

	fmt.Printf("Superuser created successfully: %s (%s)\n", user.Username, user.Email)
}
