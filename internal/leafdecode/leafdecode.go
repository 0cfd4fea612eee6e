// Package leafdecode implements the type-name dispatcher (spec.md §4.D):
// given a property's declared type name, it reads exactly the bytes/bits
// that type occupies and returns a value.Value. Grounded on
// serialization.rs's deserialize_simple_data match table.
package leafdecode

import (
	"strings"

	"github.com/finchtower/objprop/bitio"
	"github.com/finchtower/objprop/errs"
	"github.com/finchtower/objprop/internal/length"
	"github.com/finchtower/objprop/value"
)

// ExtractTypeArgument pulls the text between the first '<' and the last
// '>' out of a parametric type name, e.g. "class Point<float>" -> "float".
func ExtractTypeArgument(ty string) (string, bool) {
	open := strings.Index(ty, "<")
	if open < 0 {
		return "", false
	}

	close := strings.LastIndex(ty, ">")
	if close < 0 || close <= open {
		return "", false
	}

	return ty[open+1 : close], true
}

// Decode reads the leaf value named by ty. compact selects
// COMPACT_LENGTH_PREFIXES for any string payload nested inside. Returns
// errs.ErrNotSimple if ty does not name a leaf type, which the property
// walker treats as a recoverable signal to fall back to deserializing a
// nested object.
func Decode(r *bitio.Reader, ty string, compact bool) (value.Value, error) {
	switch ty {
	case "bool":
		b, err := r.ReadBit()
		if err != nil {
			return value.Value{}, err
		}

		return value.NewBool(b), nil

	case "char":
		v, err := r.LoadI8()
		if err != nil {
			return value.Value{}, err
		}

		return value.NewSigned(int64(v)), nil

	case "unsigned char":
		v, err := r.LoadU8()
		if err != nil {
			return value.Value{}, err
		}

		return value.NewUnsigned(uint64(v)), nil

	case "short":
		v, err := r.LoadI16()
		if err != nil {
			return value.Value{}, err
		}

		return value.NewSigned(int64(v)), nil

	case "unsigned short", "wchar_t":
		v, err := r.LoadU16()
		if err != nil {
			return value.Value{}, err
		}

		return value.NewUnsigned(uint64(v)), nil

	case "int", "long":
		v, err := r.LoadI32()
		if err != nil {
			return value.Value{}, err
		}

		return value.NewSigned(int64(v)), nil

	case "unsigned int", "unsigned long":
		v, err := r.LoadU32()
		if err != nil {
			return value.Value{}, err
		}

		return value.NewUnsigned(uint64(v)), nil

	case "float":
		v, err := r.LoadF32()
		if err != nil {
			return value.Value{}, err
		}

		return value.NewFloat(float64(v)), nil

	case "double":
		v, err := r.LoadF64()
		if err != nil {
			return value.Value{}, err
		}

		return value.NewFloat(v), nil

	case "unsigned __int64", "gid", "union gid":
		v, err := r.LoadU64()
		if err != nil {
			return value.Value{}, err
		}

		return value.NewUnsigned(v), nil

	case "bi2", "bi3", "bi4", "bi5", "bi6", "bi7", "s24":
		return decodeSignedBits(r, bitWidth(ty))

	case "bui2", "bui3", "bui4", "bui5", "bui6", "bui7", "u24":
		return decodeUnsignedBits(r, bitWidth(ty))

	case "std::string", "char*":
		return decodeString(r, compact)

	case "std::wstring", "wchar_t*":
		return decodeWString(r, compact)

	case "class Color":
		return decodeColor(r)

	case "class Vector3D":
		return decodeVec3(r)

	case "class Quaternion":
		return decodeQuat(r)

	case "class Euler":
		return decodeEuler(r)

	case "class Matrix3x3":
		return decodeMat3x3(r)
	}

	switch {
	case strings.HasPrefix(ty, "class Size"):
		return decodeParametric(r, ty, compact, value.NewSize)
	case strings.HasPrefix(ty, "class Point"):
		return decodeParametric(r, ty, compact, value.NewPoint)
	case strings.HasPrefix(ty, "class Rect"):
		return decodeParametricRect(r, ty, compact)
	}

	return value.Value{}, errs.ErrNotSimple
}

func bitWidth(ty string) int {
	switch ty {
	case "bi2", "bui2":
		return 2
	case "bi3", "bui3":
		return 3
	case "bi4", "bui4":
		return 4
	case "bi5", "bui5":
		return 5
	case "bi6", "bui6":
		return 6
	case "bi7", "bui7":
		return 7
	case "s24", "u24":
		return 24
	default:
		return 0
	}
}

func decodeUnsignedBits(r *bitio.Reader, n int) (value.Value, error) {
	v, err := r.ReadValueBits(n)
	if err != nil {
		return value.Value{}, err
	}

	return value.NewUnsigned(v), nil
}

func decodeSignedBits(r *bitio.Reader, n int) (value.Value, error) {
	v, err := r.ReadValueBits(n)
	if err != nil {
		return value.Value{}, err
	}

	return value.NewSigned(bitio.SignExtend(v, n)), nil
}

func decodeString(r *bitio.Reader, compact bool) (value.Value, error) {
	n, err := length.ReadStringLen(r, compact)
	if err != nil {
		return value.Value{}, err
	}

	b, err := r.ReadBytes(n)
	if err != nil {
		return value.Value{}, err
	}

	return value.NewString(b), nil
}

func decodeWString(r *bitio.Reader, compact bool) (value.Value, error) {
	n, err := length.ReadStringLen(r, compact)
	if err != nil {
		return value.Value{}, err
	}

	units := make([]uint16, n)
	for i := range units {
		u, err := r.LoadU16()
		if err != nil {
			return value.Value{}, err
		}
		units[i] = u
	}

	return value.NewWString(units), nil
}

func decodeColor(r *bitio.Reader) (value.Value, error) {
	b, err := r.LoadU8()
	if err != nil {
		return value.Value{}, err
	}
	g, err := r.LoadU8()
	if err != nil {
		return value.Value{}, err
	}
	rr, err := r.LoadU8()
	if err != nil {
		return value.Value{}, err
	}
	a, err := r.LoadU8()
	if err != nil {
		return value.Value{}, err
	}

	return value.NewColor(b, g, rr, a), nil
}

func decodeVec3(r *bitio.Reader) (value.Value, error) {
	x, y, z, err := load3f32(r)
	if err != nil {
		return value.Value{}, err
	}

	return value.NewVec3(x, y, z), nil
}

func decodeQuat(r *bitio.Reader) (value.Value, error) {
	x, err := r.LoadF32()
	if err != nil {
		return value.Value{}, err
	}
	y, err := r.LoadF32()
	if err != nil {
		return value.Value{}, err
	}
	z, err := r.LoadF32()
	if err != nil {
		return value.Value{}, err
	}
	w, err := r.LoadF32()
	if err != nil {
		return value.Value{}, err
	}

	return value.NewQuat(x, y, z, w), nil
}

func decodeEuler(r *bitio.Reader) (value.Value, error) {
	pitch, roll, yaw, err := load3f32(r)
	if err != nil {
		return value.Value{}, err
	}

	return value.NewEuler(pitch, roll, yaw), nil
}

func decodeMat3x3(r *bitio.Reader) (value.Value, error) {
	i, err := load3f32Array(r)
	if err != nil {
		return value.Value{}, err
	}
	j, err := load3f32Array(r)
	if err != nil {
		return value.Value{}, err
	}
	k, err := load3f32Array(r)
	if err != nil {
		return value.Value{}, err
	}

	return value.NewMat3x3(i, j, k), nil
}

func load3f32(r *bitio.Reader) (a, b, c float32, err error) {
	if a, err = r.LoadF32(); err != nil {
		return
	}
	if b, err = r.LoadF32(); err != nil {
		return
	}
	c, err = r.LoadF32()
	return
}

func load3f32Array(r *bitio.Reader) ([3]float32, error) {
	a, b, c, err := load3f32(r)
	if err != nil {
		return [3]float32{}, err
	}

	return [3]float32{a, b, c}, nil
}

func decodeParametric(r *bitio.Reader, ty string, compact bool, build func(a, b value.Value) value.Value) (value.Value, error) {
	arg, ok := ExtractTypeArgument(ty)
	if !ok {
		return value.Value{}, errs.ErrNotSimple
	}

	a, err := Decode(r, arg, compact)
	if err != nil {
		return value.Value{}, err
	}

	b, err := Decode(r, arg, compact)
	if err != nil {
		return value.Value{}, err
	}

	return build(a, b), nil
}

func decodeParametricRect(r *bitio.Reader, ty string, compact bool) (value.Value, error) {
	arg, ok := ExtractTypeArgument(ty)
	if !ok {
		return value.Value{}, errs.ErrNotSimple
	}

	parts := make([]value.Value, 4)
	for i := range parts {
		v, err := Decode(r, arg, compact)
		if err != nil {
			return value.Value{}, err
		}
		parts[i] = v
	}

	return value.NewRect(parts[0], parts[1], parts[2], parts[3]), nil
}
