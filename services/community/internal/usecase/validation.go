package usecase

import (
	"regexp"

	"sakura-community/pkg/apperr"

	validation "github.com/go-ozzo/ozzo-validation"
)

var (
	usernamePattern = regexp.MustCompile(`^\S+$`)
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)
)

type RegisterInput struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
	Email       string `json:"email"`
}

// Validate reports missing fields with one fixed message, then checks formats.
func (in RegisterInput) Validate() error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Username, validation.Required),
		validation.Field(&in.DisplayName, validation.Required),
		validation.Field(&in.Password, validation.Required),
		validation.Field(&in.Email, validation.Required),
	)
	if err != nil {
		return ErrRegisterFieldsRequired
	}

	err = validation.ValidateStruct(&in,
		validation.Field(&in.Username, validation.RuneLength(1, 50), validation.Match(usernamePattern)),
		validation.Field(&in.DisplayName, validation.RuneLength(1, 100)),
		validation.Field(&in.Password, validation.Length(1, 72)),
		validation.Field(&in.Email, validation.Length(3, 255), validation.Match(emailPattern)),
	)
	if err != nil {
		return apperr.New(apperr.KindValidation, err.Error())
	}
	return nil
}

type PostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (in PostInput) Validate() error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Content, validation.Required),
	)
	if err != nil {
		return ErrPostFieldsRequired
	}

	if err := validation.Validate(in.Title, validation.RuneLength(1, 255)); err != nil {
		return apperr.New(apperr.KindValidation, "title: "+err.Error())
	}
	return nil
}

type CommentInput struct {
	Content string `json:"content"`
	PostID  uint64 `json:"postId"`
}

func (in CommentInput) Validate() error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Content, validation.Required),
		validation.Field(&in.PostID, validation.Required),
	)
	if err != nil {
		return ErrCommentFieldsRequired
	}
	return nil
}
