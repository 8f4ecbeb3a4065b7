package models

import (
	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt cost used whenever a password is set.
var HashCost = 12

// User represents a user in the system
// Password is stored hashed (bcrypt); the plaintext is never kept
type User struct {
	id           *int
	name         string
	email        string
	passwordHash string
}

// NewUser creates a user and hashes the given password.
// A nil id means the user has not been saved yet.
func NewUser(id *int, name, email, password string) (*User, error) {
	user := &User{
		name:  name,
		email: email,
	}
	if id != nil {
		v := *id
		user.id = &v
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	return user, nil
}

// ID returns the user's id and whether one has been assigned.
func (u *User) ID() (int, bool) {
	if u.id == nil {
		return 0, false
	}
	return *u.id, true
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the bcrypt hash, never the plaintext.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) SetName(name string) {
	u.name = name
}

func (u *User) SetEmail(email string) {
	u.email = email
}

// SetPassword hashes password and replaces the stored hash.
// bcrypt rejects passwords longer than 72 bytes.
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return err
	}
	u.passwordHash = string(hashed)
	return nil
}

// VerifyPassword reports whether password matches the stored hash.
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) == nil
}

// WithID returns a persisted copy of u carrying id. The hash is copied as is.
func (u *User) WithID(id int) *User {
	return &User{
		id:           &id,
		name:         u.name,
		email:        u.email,
		passwordHash: u.passwordHash,
	}
}

// Clone returns a deep copy of u.
func (u *User) Clone() *User {
	c := *u
	if u.id != nil {
		v := *u.id
		c.id = &v
	}
	return &c
}

// UserRequestDTO carries the input needed to create a user
// Password is plaintext; it is hashed when the User is built
type UserRequestDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
