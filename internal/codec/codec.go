// Package codec encodes scenario and report files as JSON or msgpack.
//
// Both formats use the `json` struct tags, so a type only declares its field
// names once.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Format identifies a file encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

var (
	// ErrUnknownFormat indicates an unsupported encoding name or file extension.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrTrailingData indicates bytes left over after the first decoded value.
	ErrTrailingData = errors.New("trailing data after value")
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "msgpack", "mpk":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Ext returns the canonical file extension for f, including the dot.
func (f Format) Ext() string {
	if f == FormatMsgpack {
		return ".msgpack"
	}
	return ".json"
}

// Marshal encodes v in format f. JSON output is indented.
func Marshal(v any, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.MarshalIndent(v, "", "  ")
	case FormatMsgpack:
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Unmarshal decodes exactly one value in format f into v. Unknown JSON fields
// are rejected so typos in hand-written scenario files surface as errors.
func Unmarshal(data []byte, f Format, v any) error {
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			return err
		}
		if _, err := dec.Token(); err != io.EOF {
			return ErrTrailingData
		}
		return nil
	case FormatMsgpack:
		r := bytes.NewReader(data)
		dec := msgpack.NewDecoder(r)
		dec.SetCustomStructTag("json")
		if err := dec.Decode(v); err != nil {
			return err
		}
		if r.Len() != 0 {
			return ErrTrailingData
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
