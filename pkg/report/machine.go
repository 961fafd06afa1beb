package report

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/srclint/pkg/errors"
)

// JSONRenderer writes the document as indented JSON.
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode JSON report")
	}
	return nil
}

// YAMLRenderer writes the document as a YAML document.
type YAMLRenderer struct{}

func (YAMLRenderer) Render(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode YAML report")
	}
	return enc.Close()
}
