package validation

import (
	"errors"
	"regexp"

	"github.com/yourusername/todo-backend/internal/models"
)

var (
	ErrNameLength     = errors.New("name must be between 2 and 255 characters")
	ErrEmailInvalid   = errors.New("email must be a valid email address")
	ErrPasswordLength = errors.New("password must be between 6 and 255 characters")
	ErrTitleLength    = errors.New("title must be between 1 and 255 characters")
	ErrPriorityLength = errors.New("priority must be at most 10 characters")
	ErrTagsLength     = errors.New("tags must be at most 255 characters")
)

var emailRegex = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

func ValidateSignup(req *models.SignupRequest) error {
	if len(req.Name) < 2 || len(req.Name) > 255 {
		return ErrNameLength
	}
	if !emailRegex.MatchString(req.Email) {
		return ErrEmailInvalid
	}
	return validatePassword(req.Password)
}

func ValidateLogin(req *models.LoginRequest) error {
	if !emailRegex.MatchString(req.Email) {
		return ErrEmailInvalid
	}
	return validatePassword(req.Password)
}

func validatePassword(password string) error {
	if len(password) < 6 || len(password) > 255 {
		return ErrPasswordLength
	}
	return nil
}

func ValidateTodoInput(in *models.TodoInput) error {
	if len(in.Title) < 1 || len(in.Title) > 255 {
		return ErrTitleLength
	}
	if in.Priority != nil && len(*in.Priority) > 10 {
		return ErrPriorityLength
	}
	if in.Tags != nil && len(*in.Tags) > 255 {
		return ErrTagsLength
	}
	return nil
}

func ValidateTodoPatch(patch *models.TodoPatch) error {
	if patch.Title != nil && (len(*patch.Title) < 1 || len(*patch.Title) > 255) {
		return ErrTitleLength
	}
	if patch.Priority != nil && len(*patch.Priority) > 10 {
		return ErrPriorityLength
	}
	if patch.Tags != nil && len(*patch.Tags) > 255 {
		return ErrTagsLength
	}
	return nil
}
