// Package format defines the element types numser can persist and their
// byte layout.
//
// The Number constraint is a closed set: 8, 16, 32 and 64-bit signed and
// unsigned integers plus float32 and float64. Any other type parameter is
// rejected by the compiler, so element types are never validated from data.
//
// PutValues and GetValues convert between a typed slice and its raw byte
// layout. Each element occupies exactly SizeOf[T]() bytes in the byte order
// of the supplied engine; floats are stored as their IEEE-754 bit patterns.
package format
