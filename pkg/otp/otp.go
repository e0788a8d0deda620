package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// DefaultLength is the standard verification code length
const DefaultLength = 6

var randInt = rand.Int

// Generate produces a code of length independently and uniformly random
// decimal digits. The code is a string so leading zeros are preserved.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}
	digits := make([]byte, length)
	for i := range digits {
		n, err := randInt(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate otp digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
