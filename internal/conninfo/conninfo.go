// Package conninfo reads database connection parameters from a JSON file
// and turns a named entry into a database URL.
//
// The file is a JSON object mapping connection names to parameter objects:
//
//	{
//	  "reporting": {
//	    "dialect": "postgresql",
//	    "username": "report",
//	    "password": "secret",
//	    "host": "db.internal",
//	    "database": "warehouse",
//	    "port": 5432,
//	    "driver": "psycopg2",
//	    "app_name": "nightly"
//	  }
//	}
package conninfo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/oggyb/modelkit/internal/dburl"
)

var (
	// ErrInvalidFile is returned when the content is not a JSON object.
	ErrInvalidFile = errors.New("invalid connection info file")
	// ErrConnNotFound is returned when the requested name has no entry.
	ErrConnNotFound = errors.New("connection not found")
	// ErrInvalidEntry is returned when an entry has unknown keys, lacks a
	// required key or holds a value of the wrong type.
	ErrInvalidEntry = errors.New("invalid connection entry")
)

var requiredKeys = []string{"dialect", "username", "password", "host", "database"}

var optionalKeys = []string{"port", "driver", "app_name"}

// File is a decoded connection info file. Entries are validated when
// looked up, so a malformed entry only affects its own name.
type File struct {
	entries map[string]json.RawMessage
}

// ReadFile loads path and returns the URL of the connection called name.
func ReadFile(path, name string) (string, error) {
	f, err := Load(path)
	if err != nil {
		return "", err
	}

	p, err := f.Lookup(name)
	if err != nil {
		return "", err
	}
	return p.URL(), nil
}

// Load reads and decodes the file at path.
func Load(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("open connection info file: %w", err)
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode reads a connection info document from r.
func Decode(r io.Reader) (File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return File{}, fmt.Errorf("read connection info: %w", err)
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if entries == nil {
		// "null" decodes without error.
		return File{}, fmt.Errorf("%w: top level is not an object", ErrInvalidFile)
	}

	return File{entries: entries}, nil
}

// Names returns the connection names in sorted order.
func (f File) Names() []string {
	names := make([]string, 0, len(f.entries))
	for name := range f.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup decodes the entry called name.
func (f File) Lookup(name string) (dburl.Params, error) {
	raw, ok := f.entries[name]
	if !ok {
		return dburl.Params{}, fmt.Errorf("%w: %q", ErrConnNotFound, name)
	}

	p, err := decodeEntry(raw)
	if err != nil {
		return dburl.Params{}, fmt.Errorf("connection %q: %w", name, err)
	}
	return p, nil
}

func decodeEntry(raw json.RawMessage) (dburl.Params, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return dburl.Params{}, fmt.Errorf("%w: entry is not an object", ErrInvalidEntry)
	}

	for key := range fields {
		if !slices.Contains(requiredKeys, key) && !slices.Contains(optionalKeys, key) {
			return dburl.Params{}, fmt.Errorf("%w: unexpected key %q", ErrInvalidEntry, key)
		}
	}

	var missing []string
	for _, key := range requiredKeys {
		if _, ok := fields[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return dburl.Params{}, fmt.Errorf("%w: missing keys %q", ErrInvalidEntry, missing)
	}

	var p dburl.Params
	targets := map[string]*string{
		"dialect":  &p.Dialect,
		"username": &p.Username,
		"password": &p.Password,
		"host":     &p.Host,
		"database": &p.Database,
		"driver":   &p.Driver,
	}
	for key, dst := range targets {
		v, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return dburl.Params{}, fmt.Errorf("%w: %s must be a string", ErrInvalidEntry, key)
		}
	}

	if v, ok := fields["port"]; ok {
		port, err := decodePort(v)
		if err != nil {
			return dburl.Params{}, err
		}
		p.Port = port
	}

	if v, ok := fields["app_name"]; ok {
		var name *string
		if err := json.Unmarshal(v, &name); err != nil {
			return dburl.Params{}, fmt.Errorf("%w: app_name must be a string or null", ErrInvalidEntry)
		}
		p.AppName = name
	}

	return p, nil
}

// decodePort accepts the port as a JSON string or number.
func decodePort(v json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s, nil
	}

	dec := json.NewDecoder(bytes.NewReader(v))
	dec.UseNumber()
	var n any
	if err := dec.Decode(&n); err == nil {
		if num, ok := n.(json.Number); ok {
			return num.String(), nil
		}
	}
	return "", fmt.Errorf("%w: port must be a string or number", ErrInvalidEntry)
}
