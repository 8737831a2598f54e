// Package pgtype encodes and decodes PostgreSQL values in the binary wire
// format used by the frontend/backend protocol (Bind, DataRow).
//
// The package is a pure codec: it has no connection, no catalog, and no
// network I/O. Callers that speak the wire protocol supply a TypeInfo
// (typically populated from pg_type) and a Value, and get back the exact
// bytes PostgreSQL expects, or vice versa.
package pgtype
