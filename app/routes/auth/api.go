package auth

import (
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/SshartakK/AssignMate/app/config"
	"github.com/SshartakK/AssignMate/app/database"
	"github.com/SshartakK/AssignMate/app/helpers"
	"github.com/SshartakK/AssignMate/app/models"
	"github.com/SshartakK/AssignMate/app/services"
)

func ShowSignupPage(c *fiber.Ctx) error {
	if isAuthenticated(c) {
		return c.Redirect("/homeworks")
	}
	return helpers.Render(c, "auth/signup", fiber.Map{
		"Title": "Sign up - AssignMate",
	})
}

func SignupAPI(c *fiber.Ctx) error {
	if isAuthenticated(c) {
		return c.Redirect("/homeworks")
	}

	var form SignupForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	errs := form.Validate()

	db := config.GetDB()
	if errs["Username"] == "" {
		if taken, err := database.UsernameTaken(db, form.Username, uuid.Nil.String()); err != nil {
			return err
		} else if taken {
			errs["Username"] = "A user with that username already exists."
		}
	}
	if errs["Email"] == "" {
		if taken, err := database.EmailTaken(db, form.Email, uuid.Nil.String()); err != nil {
			return err
		} else if taken {
			errs["Email"] = "A user with that email already exists."
		}
	}

	if len(errs) > 0 {
		return helpers.Render(c, "auth/signup", fiber.Map{
			"Title":  "Sign up - AssignMate",
			"Errors": errs,
			"Form":   form,
		})
	}

	hashed, err := HashPassword(form.Password)
	if err != nil {
		return err
	}
	user := &models.User{
		Username:  form.Username,
		Email:     form.Email,
		Password:  hashed,
		FirstName: form.FirstName,
		LastName:  form.LastName,
	}
	if err := database.CreateUserWithProfile(db, user, models.Role(form.Role)); err != nil {
		return err
	}

	helpers.SetFlash(c, "success", fmt.Sprintf("Account created for %s", user.Username))
	return c.Redirect("/login")
}

func ShowLoginPage(c *fiber.Ctx) error {
	if isAuthenticated(c) {
		return c.Redirect("/homeworks")
	}
	return helpers.Render(c, "auth/login", fiber.Map{
		"Title": "Login - AssignMate",
	})
}

func LoginAPI(c *fiber.Ctx) error {
	var form LoginForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	fail := func() error {
		return helpers.Render(c, "auth/login", fiber.Map{
			"Title":  "Login - AssignMate",
			"Errors": map[string]string{"__all__": "Please enter a correct username and password."},
			"Form":   form,
		})
	}

	if len(form.Validate()) > 0 {
		return fail()
	}

	user, err := database.GetUserByUsername(config.GetDB(), form.Username)
	if err != nil || !CheckPasswordHash(form.Password, user.Password) {
		return fail()
	}

	token, err := GenerateJWT(user.ID, form.RememberMe)
	if err != nil {
		return err
	}
	setAuthCookie(c, token, form.RememberMe)

	return c.Redirect("/homeworks")
}

func LogoutAPI(c *fiber.Ctx) error {
	clearAuthCookie(c)
	return c.Redirect("/login")
}

func ShowProfilePage(c *fiber.Ctx) error {
	user := CurrentUser(c)
	return helpers.Render(c, "auth/profile", fiber.Map{
		"Title": "Profile - AssignMate",
		"User":  user,
	})
}

func ShowEditProfilePage(c *fiber.Ctx) error {
	user := CurrentUser(c)
	form := UpdateProfileForm{Username: user.Username, Email: user.Email}
	if user.Profile != nil {
		form.Bio = user.Profile.Bio
	}
	return helpers.Render(c, "auth/edit_profile", fiber.Map{
		"Title": "Edit profile - AssignMate",
		"User":  user,
		"Form":  form,
	})
}

func EditProfileAPI(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var form UpdateProfileForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	errs := form.Validate()

	db := config.GetDB()
	if errs["Username"] == "" {
		if taken, err := database.UsernameTaken(db, form.Username, user.ID); err != nil {
			return err
		} else if taken {
			errs["Username"] = "A user with that username already exists."
		}
	}
	if errs["Email"] == "" {
		if taken, err := database.EmailTaken(db, form.Email, user.ID); err != nil {
			return err
		} else if taken {
			errs["Email"] = "A user with that email already exists."
		}
	}

	file, fileErr := c.FormFile("avatar")
	hasAvatar := fileErr == nil && file != nil
	if hasAvatar && !services.IsImageFilename(file.Filename) {
		errs["Avatar"] = "Upload a valid image (jpg, jpeg or png)."
	}

	// nothing is written to disk until the form is known to be valid
	if len(errs) > 0 {
		return helpers.Render(c, "auth/edit_profile", fiber.Map{
			"Title":  "Edit profile - AssignMate",
			"User":   user,
			"Errors": errs,
			"Form":   form,
		})
	}

	avatar := ""
	if user.Profile != nil {
		avatar = user.Profile.Avatar
	}
	if hasAvatar {
		saved, err := saveAvatar(c, file)
		if err != nil {
			log.Printf("Rejected avatar upload: %v", err)
			return helpers.Render(c, "auth/edit_profile", fiber.Map{
				"Title":  "Edit profile - AssignMate",
				"User":   user,
				"Errors": map[string]string{"Avatar": "Upload a valid image (jpg, jpeg or png)."},
				"Form":   form,
			})
		}
		avatar = saved
	}

	if err := database.UpdateUserIdentity(db, user.ID, form.Username, form.Email); err != nil {
		return err
	}
	if err := database.UpdateProfile(db, user.ID, avatar, form.Bio); err != nil {
		return err
	}

	helpers.SetFlash(c, "success", "Your profile is updated successfully")
	return c.Redirect("/profile")
}

// saveAvatar stores the uploaded avatar under profile_images and downscales
// it in place so it never exceeds 100x100. A file that fails to decode is
// removed again.
func saveAvatar(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	dir := filepath.Join(config.AppConfig.UploadDir, "profile_images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.New().String() + filepath.Ext(file.Filename)
	path := filepath.Join(dir, name)
	if err := c.SaveFile(file, path); err != nil {
		return "", err
	}
	if err := services.DownscaleAvatar(path); err != nil {
		os.Remove(path)
		return "", err
	}
	return "profile_images/" + name, nil
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var form ChangePasswordForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	errs := form.Validate()
	if errs["OldPassword"] == "" && !CheckPasswordHash(form.OldPassword, user.Password) {
		errs["OldPassword"] = "Your old password was entered incorrectly."
	}

	if len(errs) > 0 {
		return helpers.Render(c, "auth/change_password", fiber.Map{
			"Title":  "Change password - AssignMate",
			"User":   user,
			"Errors": errs,
		})
	}

	hashed, err := HashPassword(form.NewPassword)
	if err != nil {
		return err
	}
	if err := database.UpdateUserPassword(config.GetDB(), user.ID, hashed); err != nil {
		return err
	}

	helpers.SetFlash(c, "success", "Successfully Changed Your Password")
	return c.Redirect("/profile")
}

func ShowChangePasswordPage(c *fiber.Ctx) error {
	return helpers.Render(c, "auth/change_password", fiber.Map{
		"Title": "Change password - AssignMate",
		"User":  CurrentUser(c),
	})
}

func isAuthenticated(c *fiber.Ctx) bool {
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		return false
	}
	_, err := ValidateJWT(tokenString)
	return err == nil
}
