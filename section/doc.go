// Package section defines the fixed-size header that starts every numser stream.
//
// # Layout
//
//	┌──────────────────────────────────────────────────────┐
//	│ [0:6)   Signature   "NUMSER", not NUL terminated      │
//	│ [6:7)   Version     0                                 │
//	│ [7:8)   ElemSize    byte width of the element type    │
//	│ [8:16)  Count       elements, or inner sequences      │
//	│ [16:24) Reserved    always zero                       │
//	├──────────────────────────────────────────────────────┤
//	│ [24:)   Payload                                       │
//	└──────────────────────────────────────────────────────┘
//
// Count and Reserved are written in host byte order (see the endian
// package). The header size never changes between versions, so any
// version of the format can read the header of any other and report a
// VersionError instead of misreading it.
//
// A flat payload is Count*ElemSize raw element bytes. A nested payload is
// Count complete flat streams (header plus payload) laid back to back.
//
// # Validation
//
// Validate is the single compatibility check shared by every reader:
//
//	h, err := section.ParseHeader(buf)
//	if err != nil {
//	    return err
//	}
//	if err := h.Validate(uint8(format.SizeOf[int32]())); err != nil {
//	    return err // SignatureError, VersionError or SizeMismatchError
//	}
package section
