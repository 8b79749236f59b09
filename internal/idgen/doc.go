// Package idgen generates the opaque identifiers of console sessions and
// their handles. Callers must not rely on the identifier format.
package idgen
