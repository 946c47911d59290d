package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns admin secrets into self-describing digests and checks
// candidate secrets against them. It knows nothing about accounts or storage.
type PasswordHasher interface {
	// Hash derives a salted digest of secret. The result encodes the
	// algorithm, its parameters and the salt, so it can be verified later
	// even if the default parameters change.
	Hash(secret string) (string, error)

	// Verify reports whether secret matches encoded. A malformed digest is
	// an error, a mismatch is not.
	Verify(secret, encoded string) (bool, error)
}
