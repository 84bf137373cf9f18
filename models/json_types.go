package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// errUnsupportedJSONSource is returned by Scan implementations when the driver
// hands over a value that is neither []byte nor string.
var errUnsupportedJSONSource = errors.New("unsupported json column source")

// JSONMap is an opaque key-value blob persisted in a jsonb column.
// Profile settings (tracker settings, macro targets) use it.
type JSONMap map[string]any

// Value implements [driver.Valuer]. A nil map is stored as an empty object.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements [sql.Scanner].
func (m *JSONMap) Scan(src any) error {
	raw, err := jsonBytes(src)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		*m = JSONMap{}
		return nil
	}

	out := JSONMap{}
	if err = json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("decode json map: %w", err)
	}
	*m = out
	return nil
}

// Merge returns a copy of m with every key of patch applied on top.
func (m JSONMap) Merge(patch JSONMap) JSONMap {
	out := make(JSONMap, len(m)+len(patch))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// StringList is a list of identifiers persisted as a jsonb array.
type StringList []string

// Value implements [driver.Valuer]. A nil list is stored as an empty array.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Scan implements [sql.Scanner].
func (l *StringList) Scan(src any) error {
	raw, err := jsonBytes(src)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}

	var out []string
	if err = json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("decode string list: %w", err)
	}
	*l = out
	return nil
}

// Contains reports whether id is present in the list.
func (l StringList) Contains(id string) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

func jsonBytes(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("%w: %T", errUnsupportedJSONSource, src)
	}
}
