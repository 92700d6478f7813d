package entity

// Ownable is any resource with a single fixed owner gating its mutation.
// The owner is a weak reference: depending on how the document was fetched it
// may be a bare id or a populated profile sub-document, and either form must
// resolve to the same comparable identifier.
type Ownable interface {
	// OwnerIdentifier returns the bare owner id stored on the document.
	// It may be empty on a malformed document.
	OwnerIdentifier() string
	// OwnerDocument returns the populated owner profile, or nil when the
	// reference was not populated by the fetch.
	OwnerDocument() *UserSummary
}
