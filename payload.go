package burnzip

import "unicode/utf8"

// DefaultMessageFilename names message-mode payloads inside the package.
const DefaultMessageFilename = "message.txt"

// Payload is the decrypted content of a share.
type Payload struct {
	// Filename is the name carried alongside the content. Message-mode
	// shares carry DefaultMessageFilename.
	Filename string
	// Data is the decrypted content.
	Data []byte
}

// IsText reports whether the payload is displayable as text: valid UTF-8
// with no NUL bytes. The answer is a presentation hint computed after
// decryption; it never influences whether decryption succeeds.
func (p *Payload) IsText() bool {
	if !utf8.Valid(p.Data) {
		return false
	}
	for _, b := range p.Data {
		if b == 0 {
			return false
		}
	}
	return true
}

// Text returns the payload content as a string. Only meaningful when
// IsText reports true.
func (p *Payload) Text() string {
	return string(p.Data)
}
