// Package graphio reads graph documents and writes shortest-path results.
//
// Document formats (Decode, LoadFile, EncodeDocument):
//
//	# YAML (JSON is the same shape)
//	source: a
//	graph:
//	  a: {b: -1, c: 4}
//	  b: {c: 3}
//	  c: {}
//
//	# HCL
//	source = "a"
//	node "a" {
//	  edges = { b = -1, c = 4 }
//	}
//
// Every neighbour must itself be declared as a node. YAML and JSON keep the
// file's node and neighbour order, which becomes the sweep order of the
// solvers; HCL keeps node order and sorts neighbours by name.
//
// Result formats (Encode): yaml, json, text and dot. Unreachable distances
// are written as "inf" and a missing predecessor as null (or "-" in text).
package graphio
