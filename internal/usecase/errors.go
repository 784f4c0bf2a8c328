package usecase

import "errors"

// Typed failures every workflow method returns instead of letting
// store-layer errors escape to the transport layer. Handlers map these
// onto the response envelope with errors.Is.
var (
	// Validation
	ErrValidation = errors.New("validation failed")

	// Absence
	ErrNotFound     = errors.New("not found")
	ErrUserNotFound = errors.New("user not found")

	// Conflicts
	ErrEmailTaken        = errors.New("a user already exists with that email")
	ErrAlreadyLinked     = errors.New("user is already linked")
	ErrAlreadyVerified   = errors.New("user is already verified")
	ErrRequestResolved   = errors.New("link request is already resolved")
	ErrAlreadyAssociated = errors.New("shop and brand are already associated")

	// Auth
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUnverified         = errors.New("account is not verified")
	ErrWrongPassword      = errors.New("current password was incorrect")
	ErrNotOwner           = errors.New("resource belongs to another user")

	// Linking
	ErrInvalidLinkType    = errors.New("invalid link type")
	ErrNotLinked          = errors.New("user is not linked")
	ErrRequestNotFound    = errors.New("link request not found")
	ErrNoVerificationCode = errors.New("no verification code is outstanding")
	ErrCodeMismatch       = errors.New("the provided verification code was incorrect")
)
