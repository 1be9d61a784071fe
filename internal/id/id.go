package id

import (
	"fmt"
	"sync"

	nanoid "github.com/jaevor/go-nanoid"
)

const charset = "23456789abcdefghjkmnpqrstuvwxyz"
const hashLen = 10

var (
	genOnce sync.Once
	gen     func() string
	genErr  error
)

// New returns a fresh task id: hashLen characters drawn from charset.
func New() (string, error) {
	genOnce.Do(func() {
		gen, genErr = nanoid.CustomASCII(charset, hashLen)
	})
	if genErr != nil {
		return "", fmt.Errorf("generating id: %w", genErr)
	}
	return gen(), nil
}
