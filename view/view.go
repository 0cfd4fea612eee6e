// Package view wraps a decoded value.Value tree in read-only accessors for
// language-binding callers, per spec.md §9's lazy-view design note: a
// caller holding an Object or List can walk into children without a full
// copy of the tree, and can never mutate through the view.
//
// The original implementation threads an Arc<Value> plus a raw NonNull<T>
// pointer through its view types to avoid a reference-counted clone per
// child access. Go's garbage collector already keeps any value reachable
// from a live pointer alive, so a view here is just a pointer to the
// value.Value node it denotes — no unsafe, no
// manual refcounting, grounded on the teacher's NumericBlob accessor style
// (blob/numeric_blob.go) rather than the original's ownership trick.
package view

import (
	"iter"

	"github.com/finchtower/objprop/value"
)

// Object is a read-only view over an Object value.Value.
type Object struct {
	root *value.Value
}

// NewObject wraps root as an Object view. root must hold an Object Value;
// callers that don't control that invariant should check Kind first.
func NewObject(root *value.Value) Object {
	return Object{root: root}
}

// Name returns the object's type name.
func (o Object) Name() string {
	if o.root == nil {
		return ""
	}

	return o.root.ObjectName()
}

// Len returns the number of members.
func (o Object) Len() int {
	if o.root == nil {
		return 0
	}

	return o.root.Len()
}

// Get looks up a member by name, returning a lazily-typed Field.
func (o Object) Get(name string) (Field, bool) {
	if o.root == nil {
		return Field{}, false
	}

	v, ok := o.root.Get(name)
	if !ok {
		return Field{}, false
	}

	return Field{v: v}, true
}

// All iterates the object's members in their stored (name-sorted) order.
func (o Object) All() iter.Seq2[string, Field] {
	return func(yield func(string, Field) bool) {
		if o.root == nil {
			return
		}

		for _, m := range o.root.Members() {
			if !yield(m.Name, Field{v: m.Value}) {
				return
			}
		}
	}
}

// List is a read-only view over a List value.Value.
type List struct {
	root *value.Value
}

// NewList wraps root as a List view. root must hold a List Value.
func NewList(root *value.Value) List {
	return List{root: root}
}

// Len returns the number of elements.
func (l List) Len() int {
	if l.root == nil {
		return 0
	}

	return l.root.Len()
}

// At returns the i'th element as a lazily-typed Field.
func (l List) At(i int) (Field, bool) {
	if l.root == nil {
		return Field{}, false
	}

	v, ok := l.root.At(i)
	if !ok {
		return Field{}, false
	}

	return Field{v: v}, true
}

// All iterates the list's elements in wire order.
func (l List) All() iter.Seq2[int, Field] {
	return func(yield func(int, Field) bool) {
		if l.root == nil {
			return
		}

		for i := 0; i < l.root.Len(); i++ {
			v, _ := l.root.At(i)
			if !yield(i, Field{v: v}) {
				return
			}
		}
	}
}

// Field is a single member or element value, not yet narrowed to its
// concrete shape. Callers call Kind to decide which As*/Object/List
// accessor applies, the same discriminated-access pattern value.Value
// itself uses.
type Field struct {
	v value.Value
}

// Kind reports the field's variant.
func (f Field) Kind() value.Kind { return f.v.Kind() }

// Value returns the underlying value.Value, for callers that want the
// full accessor set directly instead of going through Field.
func (f Field) Value() value.Value { return f.v }

// Object narrows f to an Object view, if f holds an Object.
func (f Field) Object() (Object, bool) {
	if f.v.Kind() != value.Object {
		return Object{}, false
	}

	v := f.v

	return Object{root: &v}, true
}

// List narrows f to a List view, if f holds a List.
func (f Field) List() (List, bool) {
	if f.v.Kind() != value.List {
		return List{}, false
	}

	v := f.v

	return List{root: &v}, true
}
