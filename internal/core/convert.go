package core

// convert.go provides field coercion from untyped JSON records.
//
// Inbound records arrive as map[string]any from encoding/json, so numbers are
// float64, nulls are nil, and callers may send "5" where 5 was meant. Each
// helper returns (value, ok, err): ok is false when the field is absent or
// null, and err is a ValidationError when the field is present but unusable.
// Coercion is deliberately tolerant (numeric strings parse as numbers, numbers
// format as strings) to match what loosely-typed upstream systems send.

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// stringField extracts a string-valued field, coercing numbers and booleans.
func stringField(rec Record, key string) (string, bool, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return "", false, nil
	}
	switch t := v.(type) {
	case string:
		return t, true, nil
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10), true, nil
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true, nil
	case bool:
		return strconv.FormatBool(t), true, nil
	default:
		return "", false, validationErrorf(key, "must be a string")
	}
}

// intField extracts an integer-valued field. JSON floats must be integral and
// numeric strings are parsed; anything else is a validation error.
func intField(rec Record, key string) (int64, bool, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return 0, false, nil
	}
	switch t := v.(type) {
	case float64:
		if t != math.Trunc(t) {
			return 0, false, validationErrorf(key, "must be an integer")
		}
		return int64(t), true, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, false, validationErrorf(key, "must be an integer")
		}
		return n, true, nil
	case int64:
		return t, true, nil
	case int:
		return int64(t), true, nil
	default:
		return 0, false, validationErrorf(key, "must be an integer")
	}
}

// boolField extracts a boolean-valued field, accepting true/false strings.
func boolField(rec Record, key string) (bool, bool, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return false, false, nil
	}
	switch t := v.(type) {
	case bool:
		return t, true, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return false, false, validationErrorf(key, "must be a boolean")
		}
		return b, true, nil
	default:
		return false, false, validationErrorf(key, "must be a boolean")
	}
}

// timeField extracts an RFC 3339 timestamp field.
func timeField(rec Record, key string) (time.Time, bool, error) {
	s, ok, err := stringField(rec, key)
	if err != nil || !ok {
		return time.Time{}, ok, err
	}
	ts, perr := time.Parse(time.RFC3339, s)
	if perr != nil {
		return time.Time{}, false, validationErrorf(key, "must be an RFC 3339 timestamp")
	}
	return ts, true, nil
}

// requireString extracts a field that must be present and non-blank.
func requireString(rec Record, key string) (string, error) {
	s, ok, err := stringField(rec, key)
	if err != nil {
		return "", err
	}
	if !ok || strings.TrimSpace(s) == "" {
		return "", validationErrorf(key, "is required")
	}
	return s, nil
}

// requireInt extracts an integer field that must be present.
func requireInt(rec Record, key string) (int64, error) {
	n, ok, err := intField(rec, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, validationErrorf(key, "is required")
	}
	return n, nil
}

// recordList extracts a field holding a list of nested records.
func recordList(rec Record, key string) ([]Record, bool, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return nil, false, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, false, validationErrorf(key, "must be a list")
	}
	out := make([]Record, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, false, validationErrorf(key, "item %d must be an object", i)
		}
		out = append(out, Record(m))
	}
	return out, true, nil
}

// enumValue checks a value against an allowed set, case-sensitively.
func enumValue(field, value string, allowed []string) (string, error) {
	for _, a := range allowed {
		if value == a {
			return value, nil
		}
	}
	return "", validationErrorf(field, "must be one of: %s", strings.Join(allowed, ", "))
}

// optionalID reads the record's "id" field for use as a storage identity.
// Present-but-unparsable ids are a validation error here; models that need to
// tolerate legacy identifiers (employees) use lenientID instead.
func optionalID(rec Record) (int64, error) {
	id, _, err := intField(rec, "id")
	return id, err
}

// lenientID reads the record's "id" field, treating any value that does not
// parse into the storage key type as absent rather than invalid. Legacy
// upstream systems send non-numeric employee ids; those records are synced as
// new rows instead of failing the whole batch.
func lenientID(rec Record) int64 {
	s, ok, err := stringField(rec, "id")
	if err != nil || !ok {
		return 0
	}
	n, perr := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if perr != nil {
		return 0
	}
	return n
}
