package utils

import "github.com/google/uuid"

// GenerateID returns a random UUID string, used for all document IDs.
func GenerateID() string {
	return uuid.NewString()
}
