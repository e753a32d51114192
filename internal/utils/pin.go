package utils

import "golang.org/x/crypto/bcrypt"

// HashPin returns the bcrypt hash of a clock-in PIN using the given cost.
// The service itself never hashes credentials at request time; this
// helper exists for the pinhash seeding tool and for test fixtures that
// stand in for the data platform.
func HashPin(pin string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pin), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPin safely compares a bcrypt hash and a plain PIN.
func VerifyPin(hash, pin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}
