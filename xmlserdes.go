// Package xmlserdes converts structured in-memory values to and from XML
// elements, driven by per-type schema descriptors declared once and reused.
//
// A schema is an ordered list of Field declarations, each mapping an XML tag
// (or attribute, marked with a leading "@") to a named field and a terse
// type specification. NewType resolves the schema into an immutable Type
// whose Serialize and Deserialize methods drive recursive conversion against
// an element tree. Codec layers typed struct access on top of the
// record-based engine.
package xmlserdes

import "strings"

// Record is the engine-level value of one serializable object: field name to
// field value. Scalar fields hold the Go type matching their ScalarType,
// enum fields hold int, list fields hold []any, nested instance fields hold
// Record, and vector fields hold *numvec.Vector or *numvec.RecordVector.
type Record map[string]any

// renderPath formats an element path for error reporting, list items carry
// 1-based indices as in "/furniture/dimensions/dimension[2]".
func renderPath(parts []string) string {
	return "/" + strings.Join(parts, "/")
}

// childPath extends an element path without aliasing the parent slice.
func childPath(path []string, comp string) []string {
	p := make([]string, len(path)+1)
	copy(p, path)
	p[len(path)] = comp
	return p
}
