package utils

import (
	"unicode"
	"unicode/utf8"

	internal_errors "github.com/threadline-dev/threadline/internal/errors"
)

func isUsernameChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// ThreadValidator checks thread creation fields against configured limits.
type ThreadValidator struct {
	MaxTitleLen int
	MaxBodyLen  int
}

func (v *ThreadValidator) Title(title string) error {
	if title == "" {
		return &internal_errors.InvalidInputError{Field: "title", Reason: "required"}
	}
	if utf8.RuneCountInString(title) > v.MaxTitleLen {
		return &internal_errors.InvalidInputError{Field: "title", Reason: "too long"}
	}
	return nil
}

func (v *ThreadValidator) Body(body string) error {
	if body == "" {
		return &internal_errors.InvalidInputError{Field: "body", Reason: "required"}
	}
	if utf8.RuneCountInString(body) > v.MaxBodyLen {
		return &internal_errors.InvalidInputError{Field: "body", Reason: "too long"}
	}
	return nil
}

// ContentValidator checks comment/reply content.
type ContentValidator struct {
	MaxLen int
}

func (v *ContentValidator) Content(content string) error {
	if content == "" {
		return &internal_errors.InvalidInputError{Field: "content", Reason: "required"}
	}
	if utf8.RuneCountInString(content) > v.MaxLen {
		return &internal_errors.InvalidInputError{Field: "content", Reason: "too long"}
	}
	return nil
}

// CredentialsValidator checks registration input.
type CredentialsValidator struct {
	MinUsernameLen int
	MaxUsernameLen int
}

func (v *CredentialsValidator) Username(username string) error {
	n := utf8.RuneCountInString(username)
	if n < v.MinUsernameLen {
		return &internal_errors.InvalidInputError{Field: "username", Reason: "too short"}
	}
	if n > v.MaxUsernameLen {
		return &internal_errors.InvalidInputError{Field: "username", Reason: "too long"}
	}
	for _, r := range username {
		if !isUsernameChar(r) {
			return &internal_errors.InvalidInputError{Field: "username", Reason: "contains restricted characters"}
		}
	}
	return nil
}

func (v *CredentialsValidator) Password(password string) error {
	if len(password) < 6 {
		return &internal_errors.InvalidInputError{Field: "password", Reason: "too short"}
	}
	return nil
}
