// Package codegen produces the public codes documents are addressed by.
package codegen

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	// Alphabet holds the 36 symbols a code may contain.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// Length is the exact number of characters in a code.
	Length = 10
)

var alphabetSize = big.NewInt(int64(len(Alphabet)))

// Generator returns a fresh random code on every call.
type Generator interface {
	Generate() (string, error)
}

type randomGenerator struct {
	src io.Reader
}

// New returns a Generator backed by crypto/rand.
func New() Generator {
	return &randomGenerator{src: rand.Reader}
}

// NewWithReader returns a Generator drawing randomness from src.
func NewWithReader(src io.Reader) Generator {
	return &randomGenerator{src: src}
}

// Generate draws each character independently and uniformly from Alphabet.
func (g *randomGenerator) Generate() (string, error) {
	b := make([]byte, Length)
	for i := range b {
		n, err := rand.Int(g.src, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("generate document code: %w", err)
		}
		b[i] = Alphabet[n.Int64()]
	}
	return string(b), nil
}

// IsWellFormed reports whether code could have been produced by a Generator.
func IsWellFormed(code string) bool {
	if len(code) != Length {
		return false
	}
	for _, r := range code {
		if !strings.ContainsRune(Alphabet, r) {
			return false
		}
	}
	return true
}
