package termtable

import (
	"encoding/json"
	"io"
)

func writeJSONL(w io.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	for _, rec := range t.records() {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
