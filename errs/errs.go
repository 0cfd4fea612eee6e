// Package errs defines the sentinel errors returned by the objprop
// deserializer and its supporting packages.
//
// Callers should compare against these with errors.Is; most call sites
// wrap a sentinel with additional context via fmt.Errorf("...: %w", ...).
package errs

import "errors"

var (
	// ErrUnexpectedEOF is returned when a read would extend past the buffer.
	ErrUnexpectedEOF = errors.New("objprop: unexpected end of buffer")

	// ErrCompressionSize is returned when the decompressed length disagrees
	// with the declared expected size.
	ErrCompressionSize = errors.New("objprop: compression size mismatch")

	// ErrUnknownType is returned when an identity hash has no matching
	// TypeDef in the registry.
	ErrUnknownType = errors.New("objprop: unknown type hash")

	// ErrUnknownProperty is returned when an exhaustive-mode property hash
	// has no matching Property in the type definition.
	ErrUnknownProperty = errors.New("objprop: unknown property hash")

	// ErrUnknownEnumVariant is returned when an integer enum payload does
	// not match any declared variant.
	ErrUnknownEnumVariant = errors.New("objprop: unknown enum variant")

	// ErrNotSimple is returned by the leaf dispatcher when a type name does
	// not name a recognized leaf type. The property walker catches this
	// exactly once per leaf to fall back to nested-object decoding.
	ErrNotSimple = errors.New("objprop: type does not represent simple data")

	// ErrPropertySize is returned in exhaustive mode when the bytes actually
	// consumed by a property disagree with its declared property_size.
	ErrPropertySize = errors.New("objprop: property size mismatch")

	// ErrObjectSizeMismatch is returned in exhaustive mode when the sum of
	// property sizes exceeds the declared object size.
	ErrObjectSizeMismatch = errors.New("objprop: object size mismatch")

	// ErrMissingDelta is returned when FORBID_DELTA_ENCODE is set and a
	// delta-encoded property's presence bit is clear.
	ErrMissingDelta = errors.New("objprop: missing required delta-encoded value")

	// ErrRecursionLimit is returned when the recursion budget is exhausted
	// before a nested deserialize call.
	ErrRecursionLimit = errors.New("objprop: recursion limit exceeded")

	// ErrInvalidUTF8 is returned when a human-readable enum payload is not
	// valid UTF-8.
	ErrInvalidUTF8 = errors.New("objprop: enum payload is not valid utf-8")

	// ErrDuplicateProperty is returned when a TypeDef declares the same
	// property name twice (an invariant of spec.md §3, checked defensively
	// when building a registry.Map).
	ErrDuplicateProperty = errors.New("objprop: duplicate property name in type definition")

	// ErrUnsupportedCompression is returned by registryio when a magic-byte
	// sniff does not match any registered codec.
	ErrUnsupportedCompression = errors.New("objprop: unrecognized registry compression")

	// ErrCodecFailure is returned by a compress.Codec when the underlying
	// compression library rejects its input or output (corrupt stream,
	// unrecognized block format, buffer too small to hold the result).
	ErrCodecFailure = errors.New("objprop: codec compression/decompression failure")
)
