package option

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

var jsonNull = []byte("null")

// MarshalJSON encodes Some(v) as v and None as null.
// Some(nil) also encodes as null, so it decodes back as None.
// It never fails: a value encoding/json cannot represent, such as a func,
// a channel or NaN, also encodes as null.
func (o Option[A]) MarshalJSON() ([]byte, error) {
	if !o.defined {
		return jsonNull, nil
	}

	b, err := json.Marshal(o.value)
	if err != nil {
		return jsonNull, nil
	}

	return b, nil
}

// UnmarshalJSON decodes null as None and anything else as Some.
// On error the option is left unchanged.
func (o *Option[A]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = None[A]()
		return nil
	}

	var v A
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode Option[%s]: %w", typeName[A](), err)
	}

	*o = Some(v)
	return nil
}

// Value implements driver.Valuer. None is stored as NULL.
func (o Option[A]) Value() (driver.Value, error) {
	if !o.defined {
		return nil, nil
	}

	return driver.DefaultParameterConverter.ConvertValue(o.value)
}

// Scan implements sql.Scanner. NULL scans as None.
// On error the option is left unchanged.
func (o *Option[A]) Scan(src any) error {
	if src == nil {
		*o = None[A]()
		return nil
	}

	var n sql.Null[A]
	if err := n.Scan(src); err != nil {
		return fmt.Errorf("scan Option[%s]: %w", typeName[A](), err)
	}

	*o = Some(n.V)
	return nil
}
