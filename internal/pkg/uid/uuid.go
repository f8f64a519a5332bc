package uid

import "github.com/google/uuid"

// UUID generates time-ordered UUID v7 strings.
type UUID struct {
	newV7 func() (uuid.UUID, error)
}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{newV7: uuid.NewV7}
}

// Generate returns a UUID v7, or a random v4 if the clock source fails.
func (u *UUID) Generate() string {
	id, err := u.newV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
