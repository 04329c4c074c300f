package wire

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/burnzip/client-go/internal/crypto"
)

const (
	// headerSize is the fixed-size portion of a package: the salt plus the
	// filename length byte.
	headerSize = crypto.SaltSize + 1

	// MaxFilenameLen is the longest filename the one-byte length field can
	// declare.
	MaxFilenameLen = 255

	// MinBlobSize is the smallest encrypted blob a package can carry: a
	// nonce and a tag around an empty ciphertext.
	MinBlobSize = crypto.NonceSize + crypto.TagSize
)

// ErrFormat is returned when bytes do not form a valid package.
var ErrFormat = errors.New("malformed package")

// Parts are the decoded fields of a package. Slices are copies; they do not
// alias the input.
type Parts struct {
	Salt     []byte
	Filename string
	Blob     []byte
}

// Pack assembles a package:
//
//	Salt (16) || FilenameLen (1) || Filename (N) || Blob (nonce || ciphertext || tag)
func Pack(salt []byte, filename string, blob []byte) ([]byte, error) {
	if len(salt) != crypto.SaltSize {
		return nil, fmt.Errorf("%w: salt length %d, want %d", ErrFormat, len(salt), crypto.SaltSize)
	}

	if len(filename) > MaxFilenameLen {
		return nil, fmt.Errorf("%w: filename length %d exceeds %d", ErrFormat, len(filename), MaxFilenameLen)
	}

	if len(blob) < MinBlobSize {
		return nil, fmt.Errorf("%w: blob length %d below minimum %d", ErrFormat, len(blob), MinBlobSize)
	}

	pkg := make([]byte, 0, headerSize+len(filename)+len(blob))
	pkg = append(pkg, salt...)
	pkg = append(pkg, byte(len(filename)))
	pkg = append(pkg, filename...)
	pkg = append(pkg, blob...)

	return pkg, nil
}

// Unpack splits a package into its parts. Every declared length is checked
// against the actual byte count before any slice is taken; a package that
// lies about its filename length is rejected, never sliced out of bounds.
func Unpack(pkg []byte) (*Parts, error) {
	if len(pkg) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrFormat, len(pkg), headerSize)
	}

	nameLen := int(pkg[crypto.SaltSize])
	if len(pkg) < headerSize+nameLen {
		return nil, fmt.Errorf("%w: declared filename length %d overruns the package", ErrFormat, nameLen)
	}

	blob := pkg[headerSize+nameLen:]
	if len(blob) < MinBlobSize {
		return nil, fmt.Errorf("%w: %d trailing bytes cannot hold an encrypted payload", ErrFormat, len(blob))
	}

	return &Parts{
		Salt:     bytes.Clone(pkg[:crypto.SaltSize]),
		Filename: string(pkg[headerSize : headerSize+nameLen]),
		Blob:     bytes.Clone(blob),
	}, nil
}
