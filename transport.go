package burnzip

// Transport says how a package travels to the recipient.
type Transport string

const (
	// TransportEmbed carries the package inside the link fragment.
	TransportEmbed Transport = "embed"
	// TransportExternal stores the package in a blob store; the link
	// carries only a reference id.
	TransportExternal Transport = "external"
)

// EmbedThreshold is the largest package, in bytes, that travels inside a
// link fragment. Anything larger goes to a blob store. The margin keeps
// the base64-expanded fragment clear of real-world URL length limits.
const EmbedThreshold = 96 * 1024

// DecideTransport picks the transport for a package of the given size.
// The decision depends on the size and nothing else, so the same package
// always travels the same way.
func DecideTransport(packageSize int) Transport {
	if packageSize <= EmbedThreshold {
		return TransportEmbed
	}
	return TransportExternal
}
