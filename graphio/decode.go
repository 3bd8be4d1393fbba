// SPDX-License-Identifier: MIT

package graphio

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	k8syaml "sigs.k8s.io/yaml"
)

// Decode reads a graph document in the given format (yaml, json or hcl).
func Decode(r io.Reader, format Format) (*Document, error) {
	switch format {
	case FormatYAML, FormatJSON:
		return decodeYAML(r)
	case FormatHCL:
		return decodeHCL(r, "graph.hcl")
	}

	return nil, errors.Wrapf(ErrUnknownFormat, "decode %q", format)
}

// LoadFile reads the document at path, choosing the codec from its extension.
func LoadFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "graphio: opening graph file")
	}
	defer f.Close()

	var doc *Document
	if format == FormatHCL {
		doc, err = decodeHCL(f, path)
	} else {
		doc, err = decodeYAML(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}

	return doc, nil
}

// EncodeDocument writes d in a format Decode reads back: yaml (file order
// kept), json (keys sorted) or hcl.
func EncodeDocument(w io.Writer, d *Document, format Format) error {
	switch format {
	case FormatYAML, FormatJSON:
		node, err := documentNode(d)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(node); err != nil {
			return errors.Wrap(err, "graphio: encoding yaml")
		}
		if err = enc.Close(); err != nil {
			return errors.Wrap(err, "graphio: encoding yaml")
		}
		out := buf.Bytes()
		if format == FormatJSON {
			if out, err = k8syaml.YAMLToJSON(out); err != nil {
				return errors.Wrap(err, "graphio: converting to json")
			}
			out = append(out, '\n')
		}
		_, err = w.Write(out)

		return errors.Wrap(err, "graphio: writing document")
	case FormatHCL:
		return writeHCL(w, d)
	}

	return errors.Wrapf(ErrUnknownFormat, "encode document %q", format)
}
