package schema

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/arthur-debert/optset/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats Generate can write
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// ExampleDocument returns a small schema document showing every kind of
// setting: numeric, boolean and indirect options.
func ExampleDocument() map[string]interface{} {
	volume := make([]interface{}, 0, 11)
	for i := 0; i <= 10; i++ {
		volume = append(volume, i)
	}

	return map[string]interface{}{
		"volume_level": map[string]interface{}{
			FieldDefault: 5,
			FieldOptions: volume,
		},
		"toggle": map[string]interface{}{
			FieldDefault: true,
			FieldOptions: []interface{}{true, false},
		},
		"img_size": map[string]interface{}{
			FieldDefault: "large",
			FieldOptions: []interface{}{
				map[string]interface{}{"large": "1920x1080"},
				map[string]interface{}{"medium": "1280x720"},
				map[string]interface{}{"small": "640x360"},
			},
		},
	}
}

// Generate renders the example document in the given format
func Generate(format string) ([]byte, error) {
	doc := ExampleDocument()

	switch strings.ToLower(format) {
	case FormatTOML, "":
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		if err := enc.Encode(doc); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode example schema as TOML")
		}
		return buf.Bytes(), nil
	case FormatYAML, "yml":
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode example schema as YAML")
		}
		return out, nil
	default:
		return nil, errors.New(errors.ErrInvalidInput, fmt.Sprintf("unknown schema format %q, use toml or yaml", format))
	}
}
