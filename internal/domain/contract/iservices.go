package contract

// IHasher hashes and verifies user passwords.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
}

// IUUIDGenerator generates document identifiers.
type IUUIDGenerator interface {
	NewUUID() string
}
