package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/probemap/pkg/errors"
)

// File formats understood by [Load], [Decode] and [Write].
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// FormatFromPath infers the file format from a path's extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported dataset file %q (want .toml, .yaml, .yml or .json)", path)
	}
}

// Load reads, decodes and validates a dataset file.
func Load(path string) (*Dataset, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "dataset %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Decode parses a dataset in the given format. It does not validate.
func Decode(r io.Reader, format string) (*Dataset, error) {
	var ds Dataset
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&ds)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "decode toml: unknown key %s", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&ds); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode yaml")
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&ds); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown dataset format: %s", format)
	}
	if ds.Relations == nil {
		ds.Relations = map[string][]string{}
	}
	return &ds, nil
}

// Write encodes ds in the given format.
func Write(w io.Writer, ds *Dataset, format string) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(ds)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ds); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ds)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown dataset format: %s", format)
	}
}

// Marshal is a convenience wrapper around [Write] that returns the bytes.
func Marshal(ds *Dataset, format string) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, ds, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
