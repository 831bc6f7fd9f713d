// Package pod dumps POD scene containers as indented text.
//
// Ownership boundary:
// - tag header and payload primitives (pod/tag)
// - block identifier registry (pod/registry)
// - payload rendering (pod/render)
// - recursive block decoding and the dump driver (this package)
//
// Byte order is little-endian for tag headers and payload words.
package pod
