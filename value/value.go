// Package value defines the dynamically-typed tree produced by the
// deserializer: a closed Value sum with one variant per spec.md §3 leaf,
// plus the Object and List container variants.
//
// Value favors a single tagged struct over an interface-per-variant
// design, the way section.NumericFlag in the teacher repo prefers a
// packed field over a sprawl of small types: dispatch is a switch on Kind,
// and the zero Value is Empty.
package value

import "sort"

// Kind tags which variant a Value holds.
type Kind uint8

const (
	Empty Kind = iota
	Bool
	Signed
	Unsigned
	Float
	String
	WString
	Enum
	Object
	List
	Color
	Vec3
	Quat
	Euler
	Mat3x3
	Size
	Point
	Rect
)

// Member is one entry of an Object's property map.
type Member struct {
	Name  string
	Value Value
}

// Value is the tagged union produced by the deserializer.
//
// Only the fields relevant to Kind are meaningful; the rest are zero.
// Geometry variants that are themselves parametric (Size, Point, Rect)
// hold their element Values by slice, keeping the outer struct a fixed
// size regardless of nesting depth (the Go equivalent of the Rust
// original's Box<(Value, Value)> indirection).
type Value struct {
	kind Kind

	b bool
	i int64
	u uint64
	f float64
	s []byte
	w []uint16
	e string

	objName    string
	members    []Member
	membersIdx map[string]int

	list []Value

	color [4]uint8  // b, g, r, a
	f32   [9]float32 // scratch for Vec3(3)/Quat(4)/Euler(3)/Mat3x3(9)

	geom []Value // Size(2), Point(2), Rect(4) element values, in wire order
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// NewBool constructs a Bool Value.
func NewBool(b bool) Value { return Value{kind: Bool, b: b} }

// NewSigned constructs a Signed Value.
func NewSigned(i int64) Value { return Value{kind: Signed, i: i} }

// NewUnsigned constructs an Unsigned Value.
func NewUnsigned(u uint64) Value { return Value{kind: Unsigned, u: u} }

// NewFloat constructs a Float Value.
func NewFloat(f float64) Value { return Value{kind: Float, f: f} }

// NewString constructs a String Value from raw bytes.
func NewString(b []byte) Value { return Value{kind: String, s: b} }

// NewWString constructs a WString Value from UTF-16 code units.
func NewWString(units []uint16) Value { return Value{kind: WString, w: units} }

// NewEnum constructs an Enum Value from its canonicalized form
// ("Type::Variant" or "A | B | C").
func NewEnum(canonical string) Value { return Value{kind: Enum, e: canonical} }

// NewColor constructs a Color Value. Fields are stored in wire order b,g,r,a.
func NewColor(b, g, r, a uint8) Value {
	return Value{kind: Color, color: [4]uint8{b, g, r, a}}
}

// NewVec3 constructs a Vec3 Value.
func NewVec3(x, y, z float32) Value {
	v := Value{kind: Vec3}
	v.f32[0], v.f32[1], v.f32[2] = x, y, z

	return v
}

// NewQuat constructs a Quat Value.
func NewQuat(x, y, z, w float32) Value {
	v := Value{kind: Quat}
	v.f32[0], v.f32[1], v.f32[2], v.f32[3] = x, y, z, w

	return v
}

// NewEuler constructs an Euler Value.
func NewEuler(pitch, roll, yaw float32) Value {
	v := Value{kind: Euler}
	v.f32[0], v.f32[1], v.f32[2] = pitch, roll, yaw

	return v
}

// NewMat3x3 constructs a Mat3x3 Value from three row vectors i, j, k.
func NewMat3x3(i, j, k [3]float32) Value {
	v := Value{kind: Mat3x3}
	copy(v.f32[0:3], i[:])
	copy(v.f32[3:6], j[:])
	copy(v.f32[6:9], k[:])

	return v
}

// NewSize constructs a Size<T> Value from its (w, h) element Values.
func NewSize(w, h Value) Value { return Value{kind: Size, geom: []Value{w, h}} }

// NewPoint constructs a Point<T> Value from its (x, y) element Values.
func NewPoint(x, y Value) Value { return Value{kind: Point, geom: []Value{x, y}} }

// NewRect constructs a Rect<T> Value from its (l, t, r, b) element Values.
func NewRect(l, t, r, b Value) Value { return Value{kind: Rect, geom: []Value{l, t, r, b}} }

// NewList constructs a List Value from its elements, in wire order.
func NewList(items []Value) Value { return Value{kind: List, list: items} }

// NewObject constructs an Object Value, sorting members lexicographically
// by name for deterministic output (spec.md §3: "keys ordered
// lexicographically for deterministic output").
func NewObject(name string, members []Member) Value {
	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })

	idx := make(map[string]int, len(members))
	for i, m := range members {
		idx[m.Name] = i
	}

	return Value{kind: Object, objName: name, members: members, membersIdx: idx}
}

// AsBool returns the Bool payload and whether v is a Bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == Bool }

// AsSigned returns the Signed payload and whether v is Signed.
func (v Value) AsSigned() (int64, bool) { return v.i, v.kind == Signed }

// AsUnsigned returns the Unsigned payload and whether v is Unsigned.
func (v Value) AsUnsigned() (uint64, bool) { return v.u, v.kind == Unsigned }

// AsFloat returns the Float payload and whether v is a Float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == Float }

// AsString returns the String payload and whether v is a String.
func (v Value) AsString() ([]byte, bool) { return v.s, v.kind == String }

// AsWString returns the WString payload and whether v is a WString.
func (v Value) AsWString() ([]uint16, bool) { return v.w, v.kind == WString }

// AsEnum returns the canonicalized enum string and whether v is an Enum.
func (v Value) AsEnum() (string, bool) { return v.e, v.kind == Enum }

// ObjectName returns the type name for an Object Value.
func (v Value) ObjectName() string { return v.objName }

// Members returns the ordered member slice for an Object Value.
func (v Value) Members() []Member { return v.members }

// Get looks up a member by name on an Object Value.
func (v Value) Get(name string) (Value, bool) {
	i, ok := v.membersIdx[name]
	if !ok {
		return Value{}, false
	}

	return v.members[i].Value, true
}

// Len returns the number of elements for a List Value, or the number of
// members for an Object Value.
func (v Value) Len() int {
	switch v.kind {
	case List:
		return len(v.list)
	case Object:
		return len(v.members)
	default:
		return 0
	}
}

// At returns the i'th element of a List Value.
func (v Value) At(i int) (Value, bool) {
	if v.kind != List || i < 0 || i >= len(v.list) {
		return Value{}, false
	}

	return v.list[i], true
}

// Color returns the b, g, r, a components of a Color Value.
func (v Value) Color() (b, g, r, a uint8) {
	return v.color[0], v.color[1], v.color[2], v.color[3]
}

// Vec3 returns the x, y, z components of a Vec3 Value.
func (v Value) Vec3() (x, y, z float32) { return v.f32[0], v.f32[1], v.f32[2] }

// Quat returns the x, y, z, w components of a Quat Value.
func (v Value) Quat() (x, y, z, w float32) { return v.f32[0], v.f32[1], v.f32[2], v.f32[3] }

// Euler returns the pitch, roll, yaw components of an Euler Value.
func (v Value) Euler() (pitch, roll, yaw float32) { return v.f32[0], v.f32[1], v.f32[2] }

// Mat3x3 returns the i, j, k row vectors of a Mat3x3 Value.
func (v Value) Mat3x3() (i, j, k [3]float32) {
	copy(i[:], v.f32[0:3])
	copy(j[:], v.f32[3:6])
	copy(k[:], v.f32[6:9])

	return i, j, k
}

// Geometry returns the element Values of a Size, Point, or Rect Value, in
// wire order (w,h / x,y / l,t,r,b).
func (v Value) Geometry() []Value { return v.geom }
