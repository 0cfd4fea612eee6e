// Package format defines the bit-vocabulary shared between a registry and
// the deserializer: PropertyFlags and SerializerFlags, plus the
// StringOrInt sum type used by enum options.
//
// The packed-field, Has*/With*/Without* accessor convention follows
// section.NumericFlag in the teacher repo this module is grounded on.
package format

// PropertyFlags is a bitset carried per Property in the type registry.
// The core only tests membership; the registry owns the numeric encoding
// of any bits beyond the ones listed here.
type PropertyFlags uint32

const (
	// TRANSMIT marks a property as part of the default transmit mask.
	TRANSMIT PropertyFlags = 1 << iota
	// PRIVILEGED_TRANSMIT marks a property transmitted only to privileged clients.
	PRIVILEGED_TRANSMIT
	// DEPRECATED marks a property that shallow-mode walks must skip.
	DEPRECATED
	// ENUM marks a property whose value is a named enum variant.
	ENUM
	// BITS marks a property whose value is a bitflag composition.
	BITS
	// DELTA_ENCODE marks a property that may be omitted via a presence bit.
	DELTA_ENCODE
)

// Has reports whether all bits in mask are set in f.
func (f PropertyFlags) Has(mask PropertyFlags) bool {
	return f&mask == mask
}

// Intersects reports whether f shares any bit with mask.
func (f PropertyFlags) Intersects(mask PropertyFlags) bool {
	return f&mask != 0
}

// With returns f with the given bits set.
func (f PropertyFlags) With(mask PropertyFlags) PropertyFlags {
	return f | mask
}

// Without returns f with the given bits cleared.
func (f PropertyFlags) Without(mask PropertyFlags) PropertyFlags {
	return f &^ mask
}

// SerializerFlags is a bitset describing the wire configuration of a
// particular stream. It may be supplied out-of-band or read from the
// stream itself when STATEFUL_FLAGS is set.
type SerializerFlags uint32

const (
	// STATEFUL_FLAGS indicates the stream carries its own SerializerFlags
	// as a leading u32.
	STATEFUL_FLAGS SerializerFlags = 1 << iota
	// COMPACT_LENGTH_PREFIXES switches string/sequence length prefixes to
	// the variable-width compact encoding (spec.md §4.C).
	COMPACT_LENGTH_PREFIXES
	// HUMAN_READABLE_ENUMS switches enum/bitflag payloads from integer tags
	// to length-prefixed canonical strings.
	HUMAN_READABLE_ENUMS
	// WITH_COMPRESSION indicates the body may be zlib-compressed, guarded
	// by a leading marker byte.
	WITH_COMPRESSION
	// FORBID_DELTA_ENCODE turns an absent delta-encoded property into an
	// error instead of Empty.
	FORBID_DELTA_ENCODE

	// serializerFlagsKnownMask covers every bit this core understands;
	// stateful flags read from the wire are truncated to it.
	serializerFlagsKnownMask = STATEFUL_FLAGS | COMPACT_LENGTH_PREFIXES | HUMAN_READABLE_ENUMS | WITH_COMPRESSION | FORBID_DELTA_ENCODE
)

// Has reports whether all bits in mask are set in f.
func (f SerializerFlags) Has(mask SerializerFlags) bool {
	return f&mask == mask
}

// TruncateKnown clears any bits this implementation doesn't assign meaning to.
func TruncateKnown(raw uint32) SerializerFlags {
	return SerializerFlags(raw) & serializerFlagsKnownMask
}

// StringOrInt is the sum type used by Property.EnumOptions to record each
// variant's wire value: either the literal string a human-readable stream
// carries, or the integer tag an integer-encoded stream carries.
type StringOrInt struct {
	str    string
	intVal uint32
	isInt  bool
}

// Int constructs an integer-valued StringOrInt.
func Int(v uint32) StringOrInt { return StringOrInt{intVal: v, isInt: true} }

// Str constructs a string-valued StringOrInt.
func Str(v string) StringOrInt { return StringOrInt{str: v} }

// IsInt reports whether this StringOrInt holds an integer.
func (s StringOrInt) IsInt() bool { return s.isInt }

// Int32 returns the integer value, or (0, false) if this holds a string.
func (s StringOrInt) Int32() (uint32, bool) {
	if !s.isInt {
		return 0, false
	}

	return s.intVal, true
}

// String returns the string value, or ("", false) if this holds an integer.
func (s StringOrInt) String() (string, bool) {
	if s.isInt {
		return "", false
	}

	return s.str, true
}

// EnumOption is one named variant of an enum/bitflag property, as declared
// by the registry.
type EnumOption struct {
	Name  string
	Value StringOrInt
}
