package client

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/handlers/cardforge/v1alpha1"
)

// Output formats accepted by --output
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateFormat rejects unknown output formats
func ValidateFormat(format string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("output", format, []string{FormatJSON, FormatYAML}, vb)
	return vb.Build()
}

// WriteResponse prints a card set response as indented JSON or block YAML.
// YAML keeps the JSON field names and order.
func WriteResponse(w io.Writer, resp *v1alpha1.GenerateCardSetResponse, format string) error {
	if err := ValidateFormat(format); err != nil {
		return err
	}

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal card set")
	}

	if format == FormatYAML {
		data, err = jsonToYAML(data)
		if err != nil {
			return err
		}
	} else {
		data = append(data, '\n')
	}

	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "failed to write card set")
	}
	return nil
}

func jsonToYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.Wrap(err, "failed to read card set document")
	}
	resetStyle(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal card set as yaml")
	}
	return out, nil
}

// resetStyle drops the flow and quoting styles carried over from JSON
func resetStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		resetStyle(child)
	}
}
