// Package registry maintains the authoritative, queryable set of examples.
//
// The Registry maps each unique example name to its descriptor and preserves
// insertion order for enumeration, so repeated runs list and execute examples
// in a stable order. It is populated during an explicit startup phase by
// catalog modules implementing the Module interface, validated against any
// loaded suite manifests, and treated as read-only for the rest of the
// process lifetime.
//
// Registration-time errors (duplicate or invalid names) are configuration
// bugs and abort startup; they are never recovered at run time.
package registry
