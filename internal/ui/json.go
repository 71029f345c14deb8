package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const jsonIndent = "  "

// ParseJSON decodes exactly one JSON document. Numbers stay json.Number so
// they print back the way they were written.
func ParseJSON(s string) (interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}
	return v, nil
}

// FormatJSON pretty-prints a decoded JSON value with two-space indentation
// and sorted object keys. With colored set, tokens are styled for a terminal;
// otherwise the output is plain JSON.
func FormatJSON(v interface{}, colored bool) string {
	f := jsonFormatter{colored: colored}
	f.value(v, 0)
	return f.sb.String()
}

type jsonFormatter struct {
	sb      strings.Builder
	colored bool
}

func (f *jsonFormatter) emit(style lipgloss.Style, s string) {
	if f.colored {
		s = style.Render(s)
	}
	f.sb.WriteString(s)
}

func (f *jsonFormatter) newline(depth int) {
	f.sb.WriteString("\n")
	f.sb.WriteString(strings.Repeat(jsonIndent, depth))
}

func (f *jsonFormatter) value(v interface{}, depth int) {
	switch val := v.(type) {
	case nil:
		f.emit(jsonNullStyle, "null")
	case bool:
		if val {
			f.emit(jsonBoolStyle, "true")
		} else {
			f.emit(jsonBoolStyle, "false")
		}
	case json.Number:
		f.emit(jsonNumberStyle, val.String())
	case float64:
		f.emit(jsonNumberStyle, quote(val))
	case string:
		f.emit(jsonStringStyle, quote(val))
	case []interface{}:
		f.array(val, depth)
	case map[string]interface{}:
		f.object(val, depth)
	default:
		f.emit(jsonStringStyle, quote(val))
	}
}

func (f *jsonFormatter) array(items []interface{}, depth int) {
	if len(items) == 0 {
		f.emit(jsonPunctStyle, "[]")
		return
	}
	f.emit(jsonPunctStyle, "[")
	for i, item := range items {
		if i > 0 {
			f.emit(jsonPunctStyle, ",")
		}
		f.newline(depth + 1)
		f.value(item, depth+1)
	}
	f.newline(depth)
	f.emit(jsonPunctStyle, "]")
}

func (f *jsonFormatter) object(obj map[string]interface{}, depth int) {
	if len(obj) == 0 {
		f.emit(jsonPunctStyle, "{}")
		return
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f.emit(jsonPunctStyle, "{")
	for i, k := range keys {
		if i > 0 {
			f.emit(jsonPunctStyle, ",")
		}
		f.newline(depth + 1)
		f.emit(jsonKeyStyle, quote(k))
		f.emit(jsonPunctStyle, ":")
		f.sb.WriteString(" ")
		f.value(obj[k], depth+1)
	}
	f.newline(depth)
	f.emit(jsonPunctStyle, "}")
}

// quote encodes a scalar as JSON without HTML escaping
func quote(v interface{}) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return `""`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
