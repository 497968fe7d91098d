package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
)

// Load decodes a JSON file from the embedded data.
func Load[T any](filename string) (T, error) {
	return LoadFrom[T](dataFS, filename)
}

// LoadFrom decodes a JSON file from fsys. Unknown fields and trailing data
// are errors so that typos in hand-written levels surface at load time.
func LoadFrom[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("read data file %s: %w", filename, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("parse %s: %w", filename, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return result, fmt.Errorf("parse %s: trailing data after JSON value", filename)
	}

	return result, nil
}
