package services

import "golang.org/x/crypto/bcrypt"

// PasswordHasher is the credential collaborator. The services never store or
// compare plaintext passwords themselves.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

type bcryptHasher struct{}

func NewBcryptHasher() PasswordHasher {
	return bcryptHasher{}
}

func (bcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (bcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
