package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// IDList is a list of reference ids stored in a single jsonb column as an
// array of strings (legacy format, e.g. '["3","7"]'). Numeric elements are
// accepted when scanning so older rows keep working. Dangling ids are not
// validated here; resolvers drop the ones that match nothing.
type IDList []int64

func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	strs := make([]string, len(l))
	for i, id := range l {
		strs[i] = strconv.FormatInt(id, 10)
	}
	b, err := json.Marshal(strs)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *IDList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into IDList", value)
	}

	if len(raw) == 0 {
		*l = nil
		return nil
	}

	var elems []interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&elems); err != nil {
		return err
	}

	ids := make(IDList, 0, len(elems))
	for _, e := range elems {
		switch v := e.(type) {
		case string:
			if id, err := strconv.ParseInt(v, 10, 64); err == nil {
				ids = append(ids, id)
			}
		case json.Number:
			if id, err := v.Int64(); err == nil {
				ids = append(ids, id)
			}
		}
	}
	*l = ids
	return nil
}

func (l IDList) GormDataType() string {
	return "jsonb"
}
