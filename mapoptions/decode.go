package mapoptions

import (
	"encoding/json"

	"github.com/woozymasta/maplibre/lnglat"
	"gopkg.in/yaml.v3"
)

// FromPayload rebuilds a record from a payload in MapLibre key names.
// Boolean toggles equal to the engine default are dropped since Finalize would
// never emit them. Unknown keys and toggles holding something other than a
// boolean are conversion failures. Values are validated by Finalize.
func FromPayload(p Payload) (Options, error) {
	container, ok := p[KeyContainer]
	if !ok {
		return Options{}, conversionError("payload has no %s", KeyContainer)
	}

	o := New(container)
	for _, key := range p.Keys() {
		if key == KeyContainer {
			continue
		}

		f, ok := LookupKey(key)
		if !ok {
			return Options{}, conversionError("unknown option %q", key)
		}

		v := p[key]
		if f.Transition == TransitionValue {
			o = o.with(f.Name, v)
			continue
		}

		b, ok := v.(bool)
		if !ok {
			return Options{}, conversionError("option %q expects a boolean, got %T", key, v)
		}
		if b == f.Default.(bool) {
			continue
		}
		o = o.with(f.Name, b)
	}

	return o, nil
}

// ParsePayload reads a YAML or JSON options document into a Payload.
// The container may be absent from the document and added by the caller.
func ParsePayload(data []byte) (Payload, error) {
	var p Payload
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, &lnglat.Error{Kind: lnglat.KindConversion, Message: "mapoptions: parse options", Err: err}
	}
	if p == nil {
		p = Payload{}
	}

	return p, nil
}

// JSON encodes the payload.
func (p Payload) JSON() ([]byte, error) {
	data, err := json.Marshal(map[string]any(p))
	if err != nil {
		return nil, &lnglat.Error{Kind: lnglat.KindConversion, Message: "mapoptions: encode payload", Err: err}
	}

	return data, nil
}

// UnmarshalYAML decodes a document in MapLibre key names, container included.
func (o *Options) UnmarshalYAML(node *yaml.Node) error {
	var p Payload
	if err := node.Decode(&p); err != nil {
		return &lnglat.Error{Kind: lnglat.KindConversion, Message: "mapoptions: decode options", Err: err}
	}

	decoded, err := FromPayload(p)
	if err != nil {
		return err
	}
	*o = decoded

	return nil
}

// MarshalJSON encodes the finalized payload.
func (o Options) MarshalJSON() ([]byte, error) {
	p, err := o.Finalize()
	if err != nil {
		return nil, err
	}

	return p.JSON()
}
