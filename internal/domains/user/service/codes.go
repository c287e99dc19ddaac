package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const codeBytes = 16

// generateCode returns 32 hex chars from crypto/rand
func generateCode() (string, error) {
	b := make([]byte, codeBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate confirmation code: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func hashCode(code string, cost int) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(code), cost)
	if err != nil {
		return "", fmt.Errorf("hash confirmation code: %w", err)
	}
	return string(h), nil
}

func codeMatches(hash, code string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
