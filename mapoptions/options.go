// Package mapoptions builds the options object handed to the MapLibre map constructor.
//
// Options is an immutable record: every transition returns a new value and leaves
// the receiver untouched, so a partially configured Options can serve as a template.
// Only fields that were set are written to the payload; everything else keeps the
// engine default.
//
//	payload, err := mapoptions.New("map").
//		WithStyle("https://demotiles.maplibre.org/style.json").
//		WithCenter([2]float64{0, 0}).
//		WithZoom(1).
//		WithLogo().
//		Finalize()
package mapoptions

import (
	"fmt"
	"sort"

	"github.com/woozymasta/maplibre/lnglat"
)

// Options is the map configuration record.
type Options struct {
	container any
	values    map[string]any
}

// New starts a record for the given container: an element id string,
// a Container or an Element. The container is not checked until Finalize.
func New(container any) Options {
	return Options{container: container}
}

// Container returns the container as given to New.
func (o Options) Container() any {
	return o.container
}

// Get returns a copy of the stored value of a field by internal name.
func (o Options) Get(name string) (any, bool) {
	v, ok := o.values[name]
	return deepCopy(v), ok
}

// Has reports whether a field is set.
func (o Options) Has(name string) bool {
	_, ok := o.values[name]
	return ok
}

// Names lists the set fields, sorted.
func (o Options) Names() []string {
	names := make([]string, 0, len(o.values))
	for name := range o.values {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Len is the number of set fields, the container excluded.
func (o Options) Len() int {
	return len(o.values)
}

// with copies the record and sets one field. The value is copied too, so the
// caller keeps no reference into the record.
func (o Options) with(name string, v any) Options {
	if name == FieldStyle {
		v = snapshotStyle(v)
	} else {
		v = deepCopy(v)
	}

	values := make(map[string]any, len(o.values)+1)
	for k, val := range o.values {
		values[k] = val
	}
	values[name] = v

	return Options{container: o.container, values: values}
}

// Clear returns a copy with the field unset, so the engine default applies.
func (o Options) Clear(name string) Options {
	if !o.Has(name) {
		return o
	}

	values := make(map[string]any, len(o.values))
	for k, val := range o.values {
		if k != name {
			values[k] = val
		}
	}

	return Options{container: o.container, values: values}
}

// Set stores a value field by internal name. The value is converted at Finalize.
func (o Options) Set(name string, v any) (Options, error) {
	if _, err := o.field(name, TransitionValue); err != nil {
		return o, err
	}

	return o.with(name, v), nil
}

// Enable sets a field whose only transition is to true.
func (o Options) Enable(name string) (Options, error) {
	if _, err := o.field(name, TransitionEnable); err != nil {
		return o, err
	}

	return o.with(name, true), nil
}

// Disable sets a field whose only transition is to false.
func (o Options) Disable(name string) (Options, error) {
	if _, err := o.field(name, TransitionDisable); err != nil {
		return o, err
	}

	return o.with(name, false), nil
}

func (o Options) field(name string, t Transition) (Field, error) {
	f, ok := Lookup(name)
	if !ok {
		return Field{}, conversionError("unknown option %q", name)
	}
	if f.Transition != t {
		return Field{}, conversionError("option %q is a %s field, not %s", name, f.Transition, t)
	}

	return f, nil
}

// Payload is the flat options object in MapLibre key names.
type Payload map[string]any

// Keys returns the payload keys, sorted.
func (p Payload) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// FieldError reports which field failed to serialize.
type FieldError struct {
	Err   error
	Field string
	Key   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("mapoptions: field %s (%s): %v", e.Field, e.Key, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Finalize serializes the record. The container and every set field are written
// under their MapLibre keys; unset fields are omitted. The first field that fails
// to convert aborts serialization with a *FieldError, no partial payload is returned.
// The record is not modified, calling Finalize again yields an equal payload.
func (o Options) Finalize() (Payload, error) {
	container, err := parseContainer(o.container)
	if err != nil {
		return nil, &FieldError{Field: KeyContainer, Key: KeyContainer, Err: err}
	}

	payload := make(Payload, len(o.values)+1)
	payload[KeyContainer] = container.Value()

	for _, f := range fields {
		v, ok := o.values[f.Name]
		if !ok {
			continue
		}

		out, err := f.encode(v)
		if err != nil {
			return nil, &FieldError{Field: f.Name, Key: f.Key, Err: err}
		}
		payload[f.Key] = out
	}

	return payload, nil
}

func (f Field) encode(v any) (any, error) {
	if f.Transition != TransitionValue {
		b, ok := v.(bool)
		if !ok {
			return nil, conversionError("expected a boolean, got %T", v)
		}

		return b, nil
	}

	return f.codec(v)
}

// Constructor creates a map of type M from a finalized payload.
type Constructor[M any] interface {
	Construct(p Payload) (M, error)
}

// ConstructorFunc adapts a function to Constructor.
type ConstructorFunc[M any] func(p Payload) (M, error)

// Construct implements Constructor.
func (fn ConstructorFunc[M]) Construct(p Payload) (M, error) {
	return fn(p)
}

// Build finalizes o and passes the payload to c. Serialization errors are returned
// as is; errors from c are wrapped as construction failures with the original error
// kept in the chain.
func Build[M any](o Options, c Constructor[M]) (M, error) {
	var zero M

	payload, err := o.Finalize()
	if err != nil {
		return zero, err
	}

	m, err := c.Construct(payload)
	if err != nil {
		return zero, &lnglat.Error{
			Kind:    lnglat.KindConstruction,
			Message: "mapoptions: construct map",
			Err:     err,
		}
	}

	return m, nil
}
