package validators

import (
	"regexp"

	"pairchat/internal/errs"
	"pairchat/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateUser(user *models.User) []error {
	var errors []error
	if len(user.Name) < 2 {
		errors = append(errors, errs.ErrInvalidName)
	}
	if !emailRegex.MatchString(user.Email) {
		errors = append(errors, errs.ErrInvalidEmail)
	}
	if len(user.Password) < 8 {
		errors = append(errors, errs.ErrInvalidPassword)
	}
	return errors
}
