// Package render writes committed tables as human-readable ASCII text.
//
// Rendering is a pure, read-only projection: it enumerates the table's
// columns in declared order and its rows in position order, converting each
// value through the fixed display mapping (NULL as *NULL*, integers in
// decimal, strings raw, UUIDs hyphenated).
package render
