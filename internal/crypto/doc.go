// Package crypto provides the cryptographic primitives for BurnZip shares:
// password-based key derivation and authenticated encryption.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - PBKDF2-HMAC-SHA-256 (RFC 8018): Key stretching that turns the short
//     shared secret into an AES-256 key. The iteration count (200,000) is
//     fixed by the share format; it is the only brute-force defense a
//     ten-character secret has.
//
//   - AES-256-GCM: Authenticated encryption with associated data (AEAD)
//     for the share payload. Provides confidentiality and integrity.
//
// # Security Model
//
// The encryption scheme provides:
//
//   - Confidentiality: Only a holder of the shared secret can decrypt.
//   - Integrity: Tampering with encrypted content causes decryption to fail.
//   - Failure opacity: Every decryption failure is reported as the single
//     [ErrDecryptionFailed]. A wrong secret is indistinguishable from
//     tampered or truncated input, so nothing downstream can be turned
//     into a padding- or tag-oracle.
//
// AES-GCM nonces MUST be unique for each encryption with the same key. Nonce
// reuse completely breaks the security of AES-GCM, allowing attackers to
// recover the authentication key and forge messages. [EncryptAES] draws a
// fresh nonce from its reader on every call and prepends it to the blob.
//
// # Randomness
//
// Salt and nonce generation take an io.Reader instead of reaching for a
// global source. Production callers pass crypto/rand.Reader; tests pass a
// fixed reader to make outputs reproducible.
package crypto
