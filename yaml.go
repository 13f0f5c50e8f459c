package describe

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, d *Describer) error {
	enc := yaml.NewEncoder(w)
	var doc any
	if !isNull(d.target) {
		doc = document{
			Type:   typeName(d.target),
			Fields: d.Entries(),
		}
	}
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
