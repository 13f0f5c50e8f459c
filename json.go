package describe

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, d *Describer) error {
	enc := json.NewEncoder(w)
	if isNull(d.target) {
		return enc.Encode(nil)
	}
	return enc.Encode(document{
		Type:   typeName(d.target),
		Fields: d.Entries(),
	})
}
