// Package wire implements the BurnZip share formats: the binary package
// layout and the link-fragment encoding.
//
// A package is laid out as:
//
//	Salt (16) || FilenameLen (1) || Filename (N) || Nonce (12) || Ciphertext || Tag (16)
//
// The salt and filename travel in the clear; only the payload content is
// encrypted. The layout is byte-exact and version-free: the fragment marker
// identifies the format, and both ends must agree on it.
//
// A link fragment is the literal marker "share:" followed by the standard
// base64 encoding of the package. The fragment form exists so the payload
// can live after the '#' of a URL, which user agents never transmit to the
// server.
package wire
