package util

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordCost is used for the admin password hash held in memory.
const DefaultPasswordCost = 12

// HashPassword hashes a plain text password with the default cost
func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, DefaultPasswordCost)
}

// HashPasswordWithCost hashes with an explicit bcrypt cost. Costs below
// bcrypt.MinCost are raised to bcrypt.DefaultCost.
func HashPasswordWithCost(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword checks if a plain text password matches a hashed password
func VerifyPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
