//go:generate go run github.com/dmarkham/enumer -type=Format -trimprefix=Format -transform=kebab -text
//go:generate go run github.com/dmarkham/enumer -type=Separator -trimprefix=Separator -transform=kebab -text
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the output encoding of a command.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
)

// Separator joins elements in text output.
type Separator int

const (
	SeparatorComma Separator = iota
	SeparatorNewline
	SeparatorSpace
)

func (s Separator) delimiter() string {
	switch s {
	case SeparatorNewline:
		return "\n"
	case SeparatorSpace:
		return " "
	default:
		return ","
	}
}

// Join joins values with sep.
func Join(sep Separator, values []string) string {
	return strings.Join(values, sep.delimiter())
}

// Texter is implemented by values with a human readable text form.
type Texter interface {
	Text() string
}

// Write encodes v to w. Text output uses v's Text method when it has one,
// falling back to fmt's default formatting. Every format ends with a newline,
// except text output of an empty string which writes nothing.
func Write(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal output to json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			enc.Close()
			return fmt.Errorf("failed to marshal output to yaml: %w", err)
		}
		return enc.Close()
	case FormatText:
		var text string
		if t, ok := v.(Texter); ok {
			text = t.Text()
		} else {
			text = fmt.Sprint(v)
		}
		if text == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, text)
		return err
	}
	return fmt.Errorf("unsupported output format: %v", f)
}

// List writes a list of elements. values is used for json and yaml, texts,
// joined by sep, for text.
func List(w io.Writer, f Format, sep Separator, values []any, texts []string) error {
	if f == FormatText {
		return Write(w, f, Join(sep, texts))
	}
	if values == nil {
		values = []any{}
	}
	return Write(w, f, values)
}
