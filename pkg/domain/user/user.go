// Package user holds the credential record consulted to authorize a
// transfer. PINs are stored as bcrypt hashes; the plaintext never leaves
// the request that carried it.
package user

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserNotFound is returned when no user exists for the given
	// (email, phone) pair.
	ErrUserNotFound = errors.New("user not found")

	// ErrIncorrectPIN is returned when the supplied PIN does not match
	// the stored hash.
	ErrIncorrectPIN = errors.New("incorrect PIN")
)

// User represents a registered user. The (Email, Phone) pair is the
// compound key the mobile client authenticates with; the transfer core
// treats the record as read-only.
type User struct {
	SerialNo  int64
	Name      string
	Email     string
	Phone     string
	HashedPin string
	UpiID     string
	Age       int
	Gender    string
	Language  string
	Address   string
	PinCode   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HashPIN hashes a plaintext PIN with bcrypt at cost 14.
func HashPIN(pin string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pin), 14)
	return string(b), err
}

// CheckPIN compares a plaintext PIN against a stored bcrypt hash.
func CheckPIN(hash, pin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}

// CheckPIN reports whether the supplied PIN matches this user's stored
// hash.
func (u *User) CheckPIN(pin string) bool {
	return CheckPIN(u.HashedPin, pin)
}
