package utils

import (
	"strconv"

	"github.com/google/uuid"
)

// ==================== UUID & CODES ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// GenerateVerificationCode returns the single-use opaque code mailed
// out after signup. Random UUID, compared as a plain string.
func GenerateVerificationCode() string {
	return uuid.New().String()
}

// ==================== PARSING ====================

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 0 {
		return defaultValue
	}

	return result
}
