package errors

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// maxSceneNameLen bounds scene names stored by the API.
const maxSceneNameLen = 128

// ValidateSceneName validates a human-readable scene name.
// Empty names are allowed; the store substitutes the record ID.
func ValidateSceneName(name string) error {
	if len(name) > maxSceneNameLen {
		return New(ErrCodeInvalidScene, "scene name too long (max %d characters)", maxSceneNameLen)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidScene, "scene name contains invalid control characters")
		}
	}
	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidScene, "scene name has leading or trailing whitespace")
	}
	return nil
}

// ValidateSceneID validates a stored scene identifier.
func ValidateSceneID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidID, "scene id cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return Wrap(ErrCodeInvalidID, err, "invalid scene id %q", id)
	}
	return nil
}

// ValidateShapeCount rejects boards larger than limit. A limit of 0 disables
// the check.
func ValidateShapeCount(n, limit int) error {
	if limit > 0 && n > limit {
		return New(ErrCodeInvalidScene, "too many shapes: %d (max %d)", n, limit)
	}
	return nil
}
