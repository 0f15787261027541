package domain

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

// Extra holds JSON members a model returned beyond the documented shape.
// They are kept and re-emitted so clients see them unchanged.
type Extra map[string]json.RawMessage

var knownFieldsCache sync.Map // reflect.Type -> map[string]struct{}

// knownFields returns the JSON member names declared by t's struct tags.
func knownFields(t reflect.Type) map[string]struct{} {
	if cached, ok := knownFieldsCache.Load(t); ok {
		return cached.(map[string]struct{})
	}

	fields := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" || !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		fields[name] = struct{}{}
	}

	knownFieldsCache.Store(t, fields)
	return fields
}

// decodeWithExtra unmarshals data into v (a pointer to a struct without custom
// JSON methods) and stores unknown members in extra.
func decodeWithExtra(data []byte, v any, extra *Extra) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}

	known := knownFields(reflect.TypeOf(v).Elem())
	var rest Extra
	for k, raw := range all {
		if _, ok := known[k]; ok {
			continue
		}
		if rest == nil {
			rest = make(Extra)
		}
		rest[k] = raw
	}
	*extra = rest
	return nil
}

// encodeWithExtra marshals v and merges extra members that do not collide
// with declared fields.
func encodeWithExtra(v any, extra Extra) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}

	known := knownFields(reflect.TypeOf(v))
	for k, raw := range extra {
		if _, ok := known[k]; ok {
			continue
		}
		merged[k] = raw
	}
	return json.Marshal(merged)
}
