package service

import (
	"time"

	"github.com/MKhiriev/go-task-tracker/internal/config"
)

// fixedIDGenerator always returns the same id.
type fixedIDGenerator string

func (g fixedIDGenerator) Generate() string { return string(g) }

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:     "test-sign-key",
		TokenDuration:    24 * time.Hour,
		PasswordHashCost: 4,
	}
}
