// Package loader reads graphs from the line-oriented text format and
// reads or writes the structured {V, E} snapshot as YAML.
//
// Text format:
//
//	# people and their links
//	#V,weight,color
//	a,2,red
//	b
//	#E
//	a,b,3
//	a c
//
// A line starting with "#V" or "#E" switches the row mode and may carry a
// comma-separated attribute header, applied positionally to the columns
// after the label(s). Above, vertex columns map to weight and color, and
// edge rows fall back to the default header, a single weight column. Rows
// without commas are split on whitespace.
//
// Other lines starting with "#" are comments. Rows before any marker are edges.
//
// Column values parse as a number, then as true/false, else as a string.
// Empty columns are skipped. Load feeds rows to a Builder in file order, so
// the usual AddVertex/AddEdge semantics apply (first vertex write wins,
// edges upsert).
//
// YAML snapshot:
//
//	directed: false
//	V:
//	  - label: a
//	    attrs: {color: red, weight: 2}
//	E:
//	  - from: a
//	    to: b
//	    attrs: {weight: 3}
//
// Errors: every malformed row or header is core.ErrInvalidInput wrapped
// with its line number.
package loader
