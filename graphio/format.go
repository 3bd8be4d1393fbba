// SPDX-License-Identifier: MIT

package graphio

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Format names a serialization.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
	FormatText Format = "text"
	FormatDOT  Format = "dot"
)

// ParseFormat maps a user-supplied name (case-insensitive, "yml" allowed) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "hcl":
		return FormatHCL, nil
	case "text", "txt":
		return FormatText, nil
	case "dot":
		return FormatDOT, nil
	}

	return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// FormatFromPath infers a document format from the file extension.
// Only document formats (yaml, json, hcl) are recognised.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	f, err := ParseFormat(ext)
	if err != nil || !f.isDocument() {
		return "", errors.Wrapf(ErrUnknownFormat, "extension of %s", path)
	}

	return f, nil
}

func (f Format) isDocument() bool {
	return f == FormatYAML || f == FormatJSON || f == FormatHCL
}
