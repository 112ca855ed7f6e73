package termtable

import (
	"bytes"
	"encoding/json"
	"io"
)

// record is one row keyed by column name. It marshals with keys in column
// order, which a map cannot do.
type record struct {
	keys   []string
	values []string
}

func (t *Table) records() []record {
	keys := t.recordKeys()
	rows := t.textRows()
	out := make([]record, len(rows))
	for i, row := range rows {
		out[i] = record{keys: keys, values: row}
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSON(w io.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t.records())
}
