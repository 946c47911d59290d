package utils

import "github.com/google/uuid"

// UUIDGenerator hands out session token IDs and request trace IDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator { return &UUIDGenerator{} }

// Generate prefers a UUIDv7 so revocation rows sort by issuance time.
// A random v4 is used if v7 generation fails.
func (UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
