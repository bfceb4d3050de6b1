package auth

import (
	"github.com/SshartakK/AssignMate/app/helpers"
)

type SignupForm struct {
	FirstName            string `form:"first_name" validate:"required,max=100"`
	LastName             string `form:"last_name" validate:"required,max=100"`
	Username             string `form:"username" validate:"required,max=100"`
	Email                string `form:"email" validate:"required,email"`
	Role                 string `form:"role" validate:"required,oneof=student teacher"`
	Password             string `form:"password" validate:"required,max=50"`
	PasswordConfirmation string `form:"password_confirmation" validate:"required,eqfield=Password"`
}

func (f *SignupForm) Validate() map[string]string {
	return helpers.ValidateStruct(f)
}

type LoginForm struct {
	Username   string `form:"username" validate:"required,max=100"`
	Password   string `form:"password" validate:"required,max=50"`
	RememberMe bool   `form:"remember_me"`
}

func (f *LoginForm) Validate() map[string]string {
	return helpers.ValidateStruct(f)
}

type UpdateProfileForm struct {
	Username string `form:"username" validate:"required,max=100"`
	Email    string `form:"email" validate:"required,email"`
	Bio      string `form:"bio"`
}

func (f *UpdateProfileForm) Validate() map[string]string {
	return helpers.ValidateStruct(f)
}

type ChangePasswordForm struct {
	OldPassword string `form:"old_password" validate:"required"`
	NewPassword string `form:"new_password" validate:"required,max=50"`
}

func (f *ChangePasswordForm) Validate() map[string]string {
	return helpers.ValidateStruct(f)
}
