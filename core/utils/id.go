package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short random identifier for scheduler-created
// entities. Callers retry on the (vanishingly rare) collision against their
// live set, so global uniqueness is not assumed here.
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, 7)
}
