package entity

import (
	"database/sql/driver"
	"encoding/json"
)

// rawJSON extracts the stored bytes from whatever the driver hands back.
func rawJSON(value interface{}) []byte {
	switch v := value.(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	default:
		return nil
	}
}

// StringList stores a []string as a JSON text column. Malformed stored
// payloads decode to an empty list instead of failing the row scan.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	*l = StringList{}
	raw := rawJSON(value)
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	*l = out
	return nil
}

// UintList stores a []uint as a JSON text column, with the same
// tolerance for corrupted payloads as StringList.
type UintList []uint

func (l UintList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *UintList) Scan(value interface{}) error {
	*l = UintList{}
	raw := rawJSON(value)
	if len(raw) == 0 {
		return nil
	}
	var out []uint
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	*l = out
	return nil
}
