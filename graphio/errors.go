// SPDX-License-Identifier: MIT

package graphio

import "github.com/pkg/errors"

var (
	// ErrUnknownFormat is returned for a format name or file extension that
	// has no codec.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrEmptyDocument is returned when a document declares no nodes.
	ErrEmptyDocument = errors.New("graphio: document has no nodes")

	// ErrMalformed is returned when a document does not have the expected shape.
	ErrMalformed = errors.New("graphio: malformed document")

	// ErrDuplicateNode is returned when a node is declared twice.
	ErrDuplicateNode = errors.New("graphio: duplicate node")
)
