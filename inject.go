package envspec

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
	"sync"
)

// Namespace is a mutable set of named attributes usable as an injection target.
// The zero value is ready to use.
type Namespace struct {
	mu    sync.RWMutex
	attrs map[string]any
}

// NewNamespace returns an empty Namespace.
func NewNamespace() *Namespace {
	return &Namespace{attrs: make(map[string]any)}
}

// SetAttr sets the attribute name, overwriting any previous value.
func (n *Namespace) SetAttr(name string, value any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.attrs == nil {
		n.attrs = make(map[string]any)
	}
	n.attrs[name] = value
	return nil
}

// Attr returns the attribute name.
func (n *Namespace) Attr(name string) (any, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	v, ok := n.attrs[name]
	return v, ok
}

// Attrs returns a copy of all attributes.
func (n *Namespace) Attrs() map[string]any {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return maps.Clone(n.attrs)
}

// Main is the program-wide namespace targeted by InjectMain.
var Main = NewNamespace()

// InjectMain injects every stored value into Main.
func (e *Environment) InjectMain() error {
	return e.Inject(Main)
}

// Inject copies every stored value onto target. Supported targets are a
// Setter, a map[string]any, or a pointer to a struct. Struct fields are
// matched by `env` tag, then by exact field name; names without a matching
// field are skipped. Values are copied, so later changes to e are not seen
// by target.
//
// A struct target is updated only if every assignment is valid. A Setter is
// written in key order and the first SetAttr error stops the injection,
// leaving the attributes already set in place.
func (e *Environment) Inject(target any) error {
	switch t := target.(type) {
	case nil:
		return fmt.Errorf("%w: nil target", ErrInject)
	case Setter:
		for _, name := range e.Keys() {
			if err := t.SetAttr(name, e.values[name]); err != nil {
				return &Error{Field: name, Err: fmt.Errorf("%w: %v", ErrInject, err)}
			}
		}
		return nil
	case map[string]any:
		if t == nil {
			return fmt.Errorf("%w: nil map", ErrInject)
		}
		maps.Copy(t, e.values)
		return nil
	}
	return e.injectStruct(target)
}

type assignment struct {
	field reflect.Value
	value reflect.Value
}

// injectStruct checks every assignment before making any of them.
func (e *Environment) injectStruct(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: unsupported target %T", ErrInject, target)
	}
	sv := rv.Elem()

	plan := make([]assignment, 0, len(e.values))
	for _, name := range e.Keys() {
		fv, ok := structField(sv, name)
		if !ok {
			continue
		}
		val, err := assignable(e.values[name], fv.Type())
		if err != nil {
			return &Error{Field: name, Err: err}
		}
		plan = append(plan, assignment{field: fv, value: val})
	}

	for _, a := range plan {
		a.field.Set(a.value)
	}
	return nil
}

func structField(sv reflect.Value, name string) (reflect.Value, bool) {
	t := sv.Type()
	for i := 0; i < t.NumField(); i++ {
		tag, _, _ := strings.Cut(t.Field(i).Tag.Get("env"), ",")
		if tag == name && sv.Field(i).CanSet() {
			return sv.Field(i), true
		}
	}
	if f, ok := t.FieldByName(name); ok && len(f.Index) == 1 {
		if fv := sv.Field(f.Index[0]); fv.CanSet() {
			return fv, true
		}
	}
	return reflect.Value{}, false
}

func assignable(v any, to reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(to), nil
	}
	val := reflect.ValueOf(v)
	if val.Type().AssignableTo(to) {
		return val, nil
	}
	if isNumeric(val.Kind()) && isNumeric(to.Kind()) {
		return val.Convert(to), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: cannot assign %T to %s", ErrInject, v, to)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
