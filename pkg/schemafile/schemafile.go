// SPDX-License-Identifier: MPL-2.0

// Package schemafile loads argument schemas declared in CUE, TOML or HCL files.
//
// The three formats decode into the same Document tree; Build converts it into an
// argspec.Schema, attaching the validators a file can express (numeric min/max, a regex
// pattern, directory existence) and validating the result.
package schemafile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pelletier/go-toml/v2"

	"github.com/invowk/argbind/pkg/cueutil"
)

// Supported schema file formats.
const (
	FormatCUE  Format = "cue"
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
)

var (
	//go:embed schemafile_schema.cue
	cueSchema []byte

	// ErrUnsupportedFormat is returned for file extensions other than .cue, .toml and .hcl.
	ErrUnsupportedFormat = errors.New("unsupported schema file format")
)

// Format is a schema file syntax.
type Format string

// FormatOf returns the format implied by a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		return FormatCUE, nil
	case ".toml":
		return FormatTOML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("%s: %w (want .cue, .toml or .hcl)", path, ErrUnsupportedFormat)
	}
}

// Load reads and decodes the schema file at path. The format follows the extension.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > cueutil.DefaultMaxFileSize {
		return nil, fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", path, info.Size(), cueutil.DefaultMaxFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, format, path)
}

// Decode parses data in the given format. filename is used in error messages only.
func Decode(data []byte, format Format, filename string) (*Document, error) {
	switch format {
	case FormatCUE:
		return decodeCUE(data, filename)
	case FormatTOML:
		return decodeTOML(data, filename)
	case FormatHCL:
		return decodeHCL(data, filename)
	default:
		return nil, fmt.Errorf("%s: %w %q", filename, ErrUnsupportedFormat, format)
	}
}

func decodeCUE(data []byte, filename string) (*Document, error) {
	res, err := cueutil.ParseAndDecode[Document](cueSchema, data, "#Schema", cueutil.WithFilename(filename))
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

func decodeTOML(data []byte, filename string) (*Document, error) {
	var doc Document
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%s:%d:%d: %s", filename, row, col, derr.Error())
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return nil, fmt.Errorf("%s: unknown fields:\n%s", filename, serr.String())
		}
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &doc, nil
}

func decodeHCL(data []byte, filename string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	var doc Document
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	return &doc, nil
}
