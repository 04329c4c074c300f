package crypto

const (
	// KeySize is the size of an AES-256 key in bytes.
	KeySize = 32
	// NonceSize is the size of an AES-GCM nonce in bytes.
	NonceSize = 12
	// TagSize is the size of an AES-GCM authentication tag in bytes.
	TagSize = 16

	// SaltSize is the size of the key-derivation salt in bytes. The salt
	// travels in the clear at the head of every package.
	SaltSize = 16

	// Iterations is the PBKDF2 iteration count. Fixed for the lifetime of
	// the share format: sender and recipient must run the identical
	// derivation or the keys diverge.
	Iterations = 200_000
)

// AlgsCiphersuite is the canonical string representation of the algorithm suite.
var AlgsCiphersuite = "PBKDF2-HMAC-SHA-256:AES-256-GCM"
