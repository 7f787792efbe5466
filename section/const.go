package section

// Format identity.
const (
	Signature     = "NUMSER"           // Signature is the magic that opens every stream.
	SignatureSize = len(Signature)     // SignatureSize is the byte length of Signature.
	Version       = uint8(0)           // Version is the only format version this package reads and writes.
	HeaderSize    = SignatureSize + 18 // HeaderSize is the fixed header size in bytes, identical across versions.
)

// Byte offsets of the header fields.
const (
	versionOffset  = SignatureSize
	elemSizeOffset = versionOffset + 1
	countOffset    = elemSizeOffset + 1
	reservedOffset = countOffset + 8
)
