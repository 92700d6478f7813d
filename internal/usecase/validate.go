package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/bereketsh/viewtube/internal/domain/apperror"
)

// validateID checks the syntactic form of a document identifier before any
// store round trip. what names the resource in the error message.
func validateID(id, what string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.Errorf(apperror.EInvalidIdentifier, "Invalid %s ID", what)
	}
	return nil
}

// validateContent rejects empty or whitespace-only content. Runs before the
// resource is even fetched; cheap validation first.
func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return apperror.Errorf(apperror.EInvalidContent, "Content cannot be empty")
	}
	return nil
}
