package domain

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User-specific validation errors
var (
	// ErrUserIDEmpty is returned when a user ID is empty or nil.
	ErrUserIDEmpty = errors.New("user ID cannot be empty")

	// ErrUserNameEmpty is returned when a user's name is empty.
	ErrUserNameEmpty = errors.New("user name cannot be empty")

	// ErrUserEmailInvalid is returned when a user's email is malformed.
	ErrUserEmailInvalid = errors.New("invalid email format")

	// ErrUserPasswordEmpty is returned when an empty password is supplied.
	ErrUserPasswordEmpty = errors.New("password cannot be empty")
)

// Shared validator instance for struct-tag validation.
var validate = validator.New()

// User is an author/contributor identity record. It is owned by nothing
// and referenced by learning objects as author and contributor.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"         validate:"required"`
	Email        string    `json:"email"        validate:"omitempty,email"`
	Organization string    `json:"organization"`

	// Credential holds the bcrypt hash of the user's password, set via
	// SetPassword. It is a placeholder for whatever credential the hosting
	// application manages and is never serialized.
	Credential string `json:"-"`
}

// NewUser creates a new User with the given name and email.
// It generates a new UUID for the user ID.
// Returns an error if validation fails.
func NewUser(name, email string) (*User, error) {
	user := &User{
		ID:    uuid.New(),
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrUserIDEmpty
	}

	if err := validate.Struct(u); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fieldErr := range fieldErrs {
				switch fieldErr.Field() {
				case "Name":
					return ErrUserNameEmpty
				case "Email":
					return ErrUserEmailInvalid
				}
			}
		}
		return err
	}

	return nil
}

// SetPassword hashes the given plaintext password with bcrypt and stores
// the hash in Credential. Returns an error for an empty password or if
// hashing fails.
func (u *User) SetPassword(password string) error {
	if password == "" {
		return ErrUserPasswordEmpty
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.Credential = string(hash)
	return nil
}

// ComparePassword compares the stored credential hash with a possible
// plaintext equivalent. Returns nil on match, an error otherwise.
func (u *User) ComparePassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Credential), []byte(password))
}
