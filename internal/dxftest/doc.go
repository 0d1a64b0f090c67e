// Package dxftest provides in-memory DXF files for unit tests.
//
// Files can be written in either the ASCII or the binary variant of the
// format, from a compact textual description of the group code/value pairs.
package dxftest
