package value

import (
	"encoding/base64"
	"encoding/json"
	"unicode/utf16"
)

// jsonValue is the wire shape used by MarshalJSON. It exists only for the
// text-formatting collaborator (cmd/objpropdump); the core never marshals
// through it.
type jsonValue struct {
	Kind    string      `json:"kind"`
	Bool    *bool       `json:"bool,omitempty"`
	Signed  *int64      `json:"signed,omitempty"`
	Unsign  *uint64     `json:"unsigned,omitempty"`
	Float   *float64    `json:"float,omitempty"`
	String  string      `json:"string,omitempty"`
	WString string      `json:"wstring,omitempty"`
	Enum    string      `json:"enum,omitempty"`
	Name    string      `json:"name,omitempty"`
	Members []jsonMember `json:"members,omitempty"`
	Items   []jsonValue `json:"items,omitempty"`
	Color   *[4]uint8   `json:"color,omitempty"`
	F32     []float32   `json:"f32,omitempty"`
	Geom    []jsonValue `json:"geometry,omitempty"`
}

type jsonMember struct {
	Name  string    `json:"name"`
	Value jsonValue `json:"value"`
}

func toJSONValue(v Value) jsonValue {
	out := jsonValue{Kind: kindName(v.kind)}

	switch v.kind {
	case Bool:
		b, _ := v.AsBool()
		out.Bool = &b
	case Signed:
		i, _ := v.AsSigned()
		out.Signed = &i
	case Unsigned:
		u, _ := v.AsUnsigned()
		out.Unsign = &u
	case Float:
		f, _ := v.AsFloat()
		out.Float = &f
	case String:
		s, _ := v.AsString()
		out.String = base64.StdEncoding.EncodeToString(s)
	case WString:
		units, _ := v.AsWString()
		out.WString = string(utf16.Decode(units))
	case Enum:
		e, _ := v.AsEnum()
		out.Enum = e
	case Object:
		out.Name = v.ObjectName()
		out.Members = make([]jsonMember, 0, len(v.members))
		for _, m := range v.members {
			out.Members = append(out.Members, jsonMember{Name: m.Name, Value: toJSONValue(m.Value)})
		}
	case List:
		out.Items = make([]jsonValue, 0, len(v.list))
		for _, item := range v.list {
			out.Items = append(out.Items, toJSONValue(item))
		}
	case Color:
		b, g, r, a := v.Color()
		arr := [4]uint8{b, g, r, a}
		out.Color = &arr
	case Vec3:
		x, y, z := v.Vec3()
		out.F32 = []float32{x, y, z}
	case Quat:
		x, y, z, w := v.Quat()
		out.F32 = []float32{x, y, z, w}
	case Euler:
		p, r, y := v.Euler()
		out.F32 = []float32{p, r, y}
	case Mat3x3:
		i, j, k := v.Mat3x3()
		out.F32 = append(append(append([]float32{}, i[:]...), j[:]...), k[:]...)
	case Size, Point, Rect:
		for _, g := range v.geom {
			out.Geom = append(out.Geom, toJSONValue(g))
		}
	}

	return out
}

func kindName(k Kind) string {
	switch k {
	case Empty:
		return "empty"
	case Bool:
		return "bool"
	case Signed:
		return "signed"
	case Unsigned:
		return "unsigned"
	case Float:
		return "float"
	case String:
		return "string"
	case WString:
		return "wstring"
	case Enum:
		return "enum"
	case Object:
		return "object"
	case List:
		return "list"
	case Color:
		return "color"
	case Vec3:
		return "vec3"
	case Quat:
		return "quat"
	case Euler:
		return "euler"
	case Mat3x3:
		return "mat3x3"
	case Size:
		return "size"
	case Point:
		return "point"
	case Rect:
		return "rect"
	default:
		return "unknown"
	}
}

// MarshalJSON renders v for the dump CLI and for tests; it is not part of
// the wire format.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(toJSONValue(v))
}
