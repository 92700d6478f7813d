package usecase

import (
	"github.com/google/uuid"

	"github.com/bereketsh/viewtube/internal/domain/apperror"
	"github.com/bereketsh/viewtube/internal/domain/entity"
)

// resolveOwnerID normalizes an owner reference to a bare comparable id.
// Depending on the fetch, the owner may arrive as a raw id field or as a
// populated profile sub-document; a populated sub-document wins. A missing or
// malformed owner fails closed with EOwnerMissing, never as authorized.
func resolveOwnerID(resource entity.Ownable) (string, error) {
	ownerID := resource.OwnerIdentifier()
	if doc := resource.OwnerDocument(); doc != nil && doc.ID != "" {
		ownerID = doc.ID
	}
	if ownerID == "" {
		return "", apperror.Errorf(apperror.EOwnerMissing, "Resource has no owner or an invalid owner")
	}
	if _, err := uuid.Parse(ownerID); err != nil {
		return "", apperror.Errorf(apperror.EOwnerMissing, "Resource has no owner or an invalid owner")
	}
	return ownerID, nil
}

// authorizeOwner gates every mutating operation on an ownable resource.
// The resource must be the freshly fetched document: the check runs after the
// existence check and before the mutation is applied, so an unauthorized
// caller never has a partial effect to roll back.
func authorizeOwner(actorID string, resource entity.Ownable) error {
	ownerID, err := resolveOwnerID(resource)
	if err != nil {
		return err
	}
	if ownerID != actorID {
		return apperror.Errorf(apperror.EForbidden, "You are not authorized to modify this resource")
	}
	return nil
}
