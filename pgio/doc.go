// Package pgio is an extremely low-level toolkit for the PostgreSQL binary
// wire format.
/*
pgio provides functions for appending and reading fixed-width integers and
IEEE 754 floats to and from byte slices, doing big-endian (network) byte
order conversion. Every function is a pure, allocation-minimal building
block; the pgtype package builds the value codec on top of it.
*/
package pgio
