package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// ShortRef derives a human-readable reference from a UUID, used for invoice
// numbers on printed documents.
func ShortRef(id uuid.UUID) string {
	return strings.ToUpper(id.String()[:8])
}
