package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type Passwords struct {
	cost int
}

// NewPasswords falls back to bcrypt.DefaultCost for a zero cost.
func NewPasswords(cost int) *Passwords {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &Passwords{cost: cost}
}

func (p *Passwords) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}

	return string(hash), nil
}

// Verify reports a mismatch as false without an error.
func (p *Passwords) Verify(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("bcrypt.CompareHashAndPassword: %w", err)
	}

	return true, nil
}
