package validator

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML encodes the serialized document as YAML.
func (f *Field) ToYAML() ([]byte, error) {
	return yaml.Marshal(f.ToJSON())
}

// ToYAML encodes the serialized document as YAML.
func (f *Form) ToYAML() ([]byte, error) {
	return yaml.Marshal(f.ToJSON())
}

// ParseFieldYAML rebuilds a field from a YAML document.
func ParseFieldYAML(data []byte) (*Field, error) {
	doc, err := decodeYAML(data)
	if err != nil {
		return nil, err
	}
	return ParseField(doc)
}

// ParseFormYAML rebuilds a form from a YAML document.
func ParseFormYAML(data []byte) (*Form, error) {
	doc, err := decodeYAML(data)
	if err != nil {
		return nil, err
	}
	return ParseForm(doc)
}

// DetectPayload reads the type discriminator of a JSON or YAML document.
func DetectPayload(data []byte) (PayloadType, error) {
	var head struct {
		Type string `yaml:"type"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return "", errors.Join(ErrInvalidPayload, err)
	}
	switch t := PayloadType(head.Type); t {
	case PayloadField, PayloadForm:
		return t, nil
	default:
		return "", fmt.Errorf("%w: unknown document type %q", ErrInvalidPayload, head.Type)
	}
}

func decodeYAML(data []byte) (map[string]any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Join(ErrInvalidPayload, err)
	}
	if root.Kind == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidPayload)
	}
	quoteValues(&root)

	var doc map[string]any
	if err := root.Decode(&doc); err != nil {
		return nil, errors.Join(ErrInvalidPayload, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidPayload)
	}
	return doc, nil
}

// quoteValues retags plain scalar values of defaultValue and currentValue as
// strings, so hand-written input such as "currentValue: 01234" keeps its text.
// Nulls are left alone.
func quoteValues(n *yaml.Node) {
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]
			if key.Value != "defaultValue" && key.Value != "currentValue" {
				continue
			}
			if value.Kind == yaml.ScalarNode && value.ShortTag() != "!!null" {
				value.Tag = "!!str"
			}
		}
	}
	for _, child := range n.Content {
		quoteValues(child)
	}
}
