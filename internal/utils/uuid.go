package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered (v7) ids for rows created by the
// service, falling back to v4 when the clock source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsUUID reports whether s is a well-formed UUID string.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}
