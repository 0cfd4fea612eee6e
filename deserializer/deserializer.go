// Package deserializer implements the property walker and
// configuration/driver layer (spec.md §4.F, §4.H): the component that
// ties the bit reader, decompression stage, length codec, leaf
// dispatcher, enum decoder, and identity strategy together into
// Deserialize, grounded on serialization.rs's Deserializer<T>.
package deserializer

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/finchtower/objprop/bitio"
	"github.com/finchtower/objprop/errs"
	"github.com/finchtower/objprop/format"
	"github.com/finchtower/objprop/internal/enumdecode"
	"github.com/finchtower/objprop/internal/leafdecode"
	"github.com/finchtower/objprop/internal/length"
	"github.com/finchtower/objprop/internal/pool"
	"github.com/finchtower/objprop/registry"
	"github.com/finchtower/objprop/value"
)

// Deserializer decodes ObjectProperty-format buffers into value.Value
// trees against a fixed set of Options and a TypeList.
type Deserializer struct {
	opts   Options
	types  registry.TypeList
	reader *bitio.Reader
	budget int
}

// New creates a Deserializer. No data has been loaded yet; call Feed
// before Deserialize.
func New(opts Options, types registry.TypeList) *Deserializer {
	return &Deserializer{opts: opts, types: types}
}

// Feed loads data for decoding, per spec.md §4.H: when ManualCompression
// is set the payload is unconditionally a zlib stream; otherwise a
// leading STATEFUL_FLAGS u32 and/or WITH_COMPRESSION marker byte are
// consumed first. scratch is the caller-owned destination for any
// decompression — cleared and grown as needed, retained by the
// Deserializer only until the next Feed call.
func (d *Deserializer) Feed(data []byte, scratch *pool.ScratchBuffer) error {
	if d.opts.ManualCompression {
		r, err := d.decompressData(data, scratch)
		if err != nil {
			return err
		}

		if d.opts.Flags.Has(format.STATEFUL_FLAGS) {
			raw, err := r.LoadU32()
			if err != nil {
				return err
			}
			d.opts.Flags = format.TruncateKnown(raw)
		}

		d.reader = r

		return nil
	}

	if d.opts.Flags.Has(format.STATEFUL_FLAGS) {
		if len(data) < 4 {
			return errs.ErrUnexpectedEOF
		}
		d.opts.Flags = format.TruncateKnown(binary.LittleEndian.Uint32(data[:4]))
		data = data[4:]
	}

	if d.opts.Flags.Has(format.WITH_COMPRESSION) {
		if len(data) < 1 {
			return errs.ErrUnexpectedEOF
		}
		marker := data[0]
		data = data[1:]

		if marker != 0 {
			r, err := d.decompressData(data, scratch)
			if err != nil {
				return err
			}

			d.reader = r

			return nil
		}
	}

	d.reader = bitio.New(data)

	return nil
}

// decompressData reads a [u32 expected_size][zlib stream] prelude and
// inflates it into scratch, per spec.md §4.B.
func (d *Deserializer) decompressData(data []byte, scratch *pool.ScratchBuffer) (*bitio.Reader, error) {
	if len(data) < 4 {
		return nil, errs.ErrUnexpectedEOF
	}

	expected := binary.LittleEndian.Uint32(data[:4])

	decoded, err := d.opts.Codec.Decompress(data[4:])
	if err != nil {
		return nil, fmt.Errorf("decompressing payload: %w", err)
	}

	if uint32(len(decoded)) != expected {
		return nil, errs.ErrCompressionSize
	}

	scratch.SetBytes(decoded)

	return bitio.New(scratch.Bytes()), nil
}

// Deserialize decodes one top-level object from the data previously
// loaded via Feed.
func (d *Deserializer) Deserialize() (value.Value, error) {
	d.budget = d.opts.RecursionLimit

	return d.deserializeObject()
}

func (d *Deserializer) enterRecursion() error {
	d.budget--
	if d.budget <= 0 {
		return errs.ErrRecursionLimit
	}

	return nil
}

func (d *Deserializer) exitRecursion() {
	d.budget++
}

func (d *Deserializer) compact() bool {
	return d.opts.Flags.Has(format.COMPACT_LENGTH_PREFIXES)
}

func (d *Deserializer) deserializeObject() (value.Value, error) {
	if err := d.enterRecursion(); err != nil {
		return value.Value{}, err
	}
	defer d.exitRecursion()

	def, ok, err := d.opts.Identity.Identify(d.reader, d.types)
	if err != nil {
		return value.Value{}, err
	}
	if !ok {
		return value.Value{}, nil
	}

	objectSize := 0
	if !d.opts.Shallow {
		sz, err := d.reader.LoadU32()
		if err != nil {
			return value.Value{}, err
		}
		objectSize = int(sz)
	}

	members, err := d.deserializeProperties(objectSize, def)
	if err != nil {
		return value.Value{}, err
	}

	return value.NewObject(def.Name, members), nil
}

func (d *Deserializer) deserializeProperties(objectSize int, def registry.TypeDef) ([]value.Member, error) {
	var members []value.Member

	if d.opts.Shallow {
		mask := d.opts.PropertyMask
		for _, prop := range def.Properties {
			if !prop.Flags.Has(mask) || prop.Flags.Has(format.DEPRECATED) {
				continue
			}

			v, err := d.deserializeProperty(prop)
			if err != nil {
				return nil, err
			}

			members = append(members, value.Member{Name: prop.Name, Value: v})
		}

		return members, nil
	}

	for objectSize > 0 {
		prevLen := d.reader.Len()

		propertySize, err := d.reader.LoadU32()
		if err != nil {
			return nil, err
		}

		propertyHash, err := d.reader.LoadU32()
		if err != nil {
			return nil, err
		}

		prop, ok := def.ByHash(propertyHash)
		if !ok {
			return nil, fmt.Errorf("%w: %d", errs.ErrUnknownProperty, propertyHash)
		}

		v, err := d.deserializeProperty(prop)
		if err != nil {
			return nil, err
		}

		actualSize := prevLen - d.reader.Len()
		if actualSize != int(propertySize) {
			return nil, fmt.Errorf("%w: expected %d, got %d", errs.ErrPropertySize, propertySize, actualSize)
		}

		if int(propertySize) > objectSize {
			return nil, errs.ErrObjectSizeMismatch
		}
		objectSize -= int(propertySize)

		members = append(members, value.Member{Name: prop.Name, Value: v})
	}

	return members, nil
}

func (d *Deserializer) deserializeProperty(prop registry.Property) (value.Value, error) {
	if prop.Flags.Has(format.DELTA_ENCODE) {
		present, err := d.reader.ReadBit()
		if err != nil {
			return value.Value{}, err
		}

		if !present {
			if d.opts.Flags.Has(format.FORBID_DELTA_ENCODE) {
				return value.Value{}, errs.ErrMissingDelta
			}

			return value.Value{}, nil
		}
	}

	if prop.Dynamic {
		return d.deserializeList(prop)
	}

	return d.deserializeData(prop)
}

func (d *Deserializer) deserializeData(prop registry.Property) (value.Value, error) {
	if prop.Flags.Intersects(format.BITS | format.ENUM) {
		return enumdecode.Decode(d.reader, d.opts.Flags, prop, d.compact())
	}

	v, err := leafdecode.Decode(d.reader, prop.Type, d.compact())
	if err != nil {
		if errors.Is(err, errs.ErrNotSimple) {
			return d.deserializeObject()
		}

		return value.Value{}, err
	}

	return v, nil
}

func (d *Deserializer) deserializeList(prop registry.Property) (value.Value, error) {
	n, err := length.ReadSequenceLen(d.reader, d.compact())
	if err != nil {
		return value.Value{}, err
	}

	if err := d.enterRecursion(); err != nil {
		return value.Value{}, err
	}
	defer d.exitRecursion()

	scratch, release := pool.GetValueSlice(n)
	defer release()

	for i := range scratch {
		v, err := d.deserializeData(prop)
		if err != nil {
			return value.Value{}, err
		}
		scratch[i] = v
	}

	items := make([]value.Value, n)
	copy(items, scratch)

	return value.NewList(items), nil
}
