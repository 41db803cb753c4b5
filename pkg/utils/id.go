package utils

import "github.com/google/uuid"

// GenerateRunID returns a random UUID identifying one simulation run.
func GenerateRunID() string {
	return uuid.NewString()
}
