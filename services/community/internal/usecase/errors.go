package usecase

import "sakura-community/pkg/apperr"

var (
	ErrRegisterFieldsRequired = apperr.New(apperr.KindValidation, "Username, display name, password, and email are required")
	ErrLoginFieldsRequired    = apperr.New(apperr.KindValidation, "Username and password are required")
	ErrDuplicateUser          = apperr.New(apperr.KindDuplicate, "Username or email already exists")
	ErrUserNotFound           = apperr.New(apperr.KindAuthentication, "Username does not exist")
	ErrWrongPassword          = apperr.New(apperr.KindAuthentication, "Incorrect password")

	ErrMissingToken        = apperr.New(apperr.KindAuthentication, "Access token required")
	ErrInvalidToken        = apperr.New(apperr.KindInvalidToken, "Invalid token")
	ErrTokenExpired        = apperr.New(apperr.KindInvalidToken, "Token expired")
	ErrSessionUserNotFound = apperr.New(apperr.KindAuthentication, "Invalid token")

	ErrPostFieldsRequired    = apperr.New(apperr.KindValidation, "Title and content are required")
	ErrCommentFieldsRequired = apperr.New(apperr.KindValidation, "Content and postId are required")
	ErrPostNotFound          = apperr.New(apperr.KindNotFound, "Post not found")
	ErrCommentNotFound       = apperr.New(apperr.KindNotFound, "Comment not found")
	ErrAccountNotFound       = apperr.New(apperr.KindNotFound, "User not found")
	ErrPermissionDenied      = apperr.New(apperr.KindForbidden, "Permission denied")
)
