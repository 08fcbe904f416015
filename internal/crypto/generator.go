package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/genvault/genvault-go/internal/model"
)

const (
	letterChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	numberChars = "0123456789"
	symbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	MaxLength = 128
)

var (
	ErrNegativeCount = errors.New("character counts must not be negative")
	ErrEmptyPassword = errors.New("at least one character must be requested")
	ErrLengthTooLong = errors.New("password length must be at most 128")
)

// Generate creates a cryptographically secure random password containing exactly
// opts.Letters letters, opts.Numbers digits and opts.Symbols symbols.
func Generate(opts model.GeneratorOptions) (string, error) {
	if opts.Letters < 0 || opts.Numbers < 0 || opts.Symbols < 0 {
		return "", ErrNegativeCount
	}
	// Bound each count before summing so the total cannot overflow.
	if opts.Letters > MaxLength || opts.Numbers > MaxLength || opts.Symbols > MaxLength {
		return "", ErrLengthTooLong
	}
	total := opts.Total()
	if total == 0 {
		return "", ErrEmptyPassword
	}
	if total > MaxLength {
		return "", ErrLengthTooLong
	}

	result := make([]byte, 0, total)
	for _, class := range []struct {
		charset string
		count   int
	}{
		{letterChars, opts.Letters},
		{numberChars, opts.Numbers},
		{symbolChars, opts.Symbols},
	} {
		for i := 0; i < class.count; i++ {
			ch, err := randChar(class.charset)
			if err != nil {
				return "", err
			}
			result = append(result, ch)
		}
	}

	// Classes were appended in order; shuffle so positions carry no information.
	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
