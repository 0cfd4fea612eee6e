package deserializer

import (
	"github.com/finchtower/objprop/compress"
	"github.com/finchtower/objprop/format"
	"github.com/finchtower/objprop/identity"
	"github.com/finchtower/objprop/internal/options"
)

// defaultRecursionLimit mirrors the original's u8::MAX / 2.
const defaultRecursionLimit = 127

// Options configures a Deserializer, mirroring DeserializerOptions from
// the original implementation (spec.md §4.H).
type Options struct {
	// Flags are the SerializerFlags in effect. When STATEFUL_FLAGS is set
	// these are overwritten by Feed from the stream itself.
	Flags format.SerializerFlags

	// PropertyMask selects which properties a shallow-mode walk visits.
	PropertyMask format.PropertyFlags

	// Shallow selects the shallow (ordered, unframed) walk strategy over
	// the exhaustive (size+hash framed) one.
	Shallow bool

	// ManualCompression tells Feed the caller has already stripped any
	// framing and the payload is unconditionally a zlib stream; a
	// STATEFUL_FLAGS word, if enabled, is read from the inflated body.
	ManualCompression bool

	// RecursionLimit bounds nested object/list depth.
	RecursionLimit int

	// Identity selects the object-identity strategy (spec.md §4.G).
	Identity identity.Strategy

	// Codec is the codec Feed uses to inflate a WITH_COMPRESSION payload.
	// Defaults to compress.ZlibCodec, the only codec the wire format
	// actually specifies; overridable for tests.
	Codec compress.Codec
}

// Option configures a Deserializer via functional options.
type Option = options.Option[*Options]

// DefaultOptions returns the configuration the original crate defaults
// to: no serializer flags, the TRANSMIT|PRIVILEGED_TRANSMIT property
// mask, exhaustive (non-shallow) mode, no manual compression, a
// recursion limit of 127, the default hash-based identity strategy, and
// the zlib codec.
func DefaultOptions() Options {
	return Options{
		PropertyMask:   format.TRANSMIT | format.PRIVILEGED_TRANSMIT,
		RecursionLimit: defaultRecursionLimit,
		Identity:       identity.Default{},
		Codec:          compress.NewZlibCodec(),
	}
}

// NewOptions builds Options starting from DefaultOptions and applying
// each Option in order.
func NewOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	if err := options.Apply(&o, opts...); err != nil {
		return Options{}, err
	}

	return o, nil
}

// WithFlags sets the SerializerFlags.
func WithFlags(f format.SerializerFlags) Option {
	return options.NoError(func(o *Options) { o.Flags = f })
}

// WithPropertyMask sets the shallow-mode property mask.
func WithPropertyMask(mask format.PropertyFlags) Option {
	return options.NoError(func(o *Options) { o.PropertyMask = mask })
}

// WithShallow selects the shallow walk strategy.
func WithShallow(shallow bool) Option {
	return options.NoError(func(o *Options) { o.Shallow = shallow })
}

// WithManualCompression tells Feed to always treat fed data as a
// zlib-wrapped payload with no marker byte; when STATEFUL_FLAGS is set,
// the flags word is read from the inflated body.
func WithManualCompression(manual bool) Option {
	return options.NoError(func(o *Options) { o.ManualCompression = manual })
}

// WithRecursionLimit overrides the recursion budget.
func WithRecursionLimit(limit int) Option {
	return options.New(func(o *Options) error {
		if limit <= 0 {
			return errRecursionLimitInvalid
		}

		o.RecursionLimit = limit

		return nil
	})
}

// WithIdentityStrategy overrides the object-identity strategy.
func WithIdentityStrategy(s identity.Strategy) Option {
	return options.NoError(func(o *Options) { o.Identity = s })
}

// WithCodec overrides the codec used to inflate compressed payloads.
func WithCodec(c compress.Codec) Option {
	return options.NoError(func(o *Options) { o.Codec = c })
}
