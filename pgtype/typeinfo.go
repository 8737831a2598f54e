package pgtype

// Well-known PostgreSQL OIDs for the scalar and array types this package
// encodes and decodes. Mirrors the pg_type rows a catalog lookup would
// return for these names.
const (
	BoolOID        = 16
	ByteaOID       = 17
	Int8OID        = 20
	Int2OID        = 21
	Int4OID        = 23
	TextOID        = 25
	OIDOID         = 26
	NameOID        = 19
	Float4OID      = 700
	Float8OID      = 701
	BPCharOID      = 1042
	VarcharOID     = 1043
	DateOID        = 1082
	TimeOID        = 1083
	TimestampOID   = 1114
	TimestamptzOID = 1184
	IntervalOID    = 1186
	UUIDOID        = 2950

	BoolArrayOID        = 1000
	ByteaArrayOID       = 1001
	Int2ArrayOID        = 1005
	Int4ArrayOID        = 1007
	TextArrayOID        = 1009
	Int8ArrayOID        = 1016
	VarcharArrayOID     = 1015
	Float4ArrayOID      = 1021
	Float8ArrayOID      = 1022
	OIDArrayOID         = 1028
	TimestampArrayOID   = 1115
	DateArrayOID        = 1182
	TimeArrayOID        = 1183
	TimestamptzArrayOID = 1185
	IntervalArrayOID    = 1187
	UUIDArrayOID        = 2951
)

// TypeInfo describes a PostgreSQL type to the encoder and decoder. It is
// purely data: construction starts from an OID with every other field
// empty, and the With* methods each return a modified copy. No method on
// TypeInfo performs encoding or decoding; that dispatch lives in Encode and
// Decode, keyed off Typesend and Typereceive.
//
// CompOIDs/CompTypes are reserved for composite types. Encode and Decode do
// not handle composite values, so these fields are carried here only so a
// catalog-populated TypeInfo round trips without losing information.
type TypeInfo struct {
	OID         uint32
	Name        string
	Typesend    string
	Typereceive string
	Typelen     int32
	Output      string
	Input       string
	ElemOID     uint32
	ElemType    *TypeInfo
	BaseOID     uint32
	CompOIDs    []uint32
	CompTypes   []TypeInfo
}

// NewTypeInfo returns a TypeInfo for oid with every other field empty.
func NewTypeInfo(oid uint32) TypeInfo {
	return TypeInfo{OID: oid}
}

func (t TypeInfo) WithName(name string) TypeInfo {
	t.Name = name
	return t
}

func (t TypeInfo) WithTypesend(typesend string) TypeInfo {
	t.Typesend = typesend
	return t
}

func (t TypeInfo) WithTypereceive(typereceive string) TypeInfo {
	t.Typereceive = typereceive
	return t
}

func (t TypeInfo) WithTypelen(typelen int32) TypeInfo {
	t.Typelen = typelen
	return t
}

func (t TypeInfo) WithOutput(output string) TypeInfo {
	t.Output = output
	return t
}

func (t TypeInfo) WithInput(input string) TypeInfo {
	t.Input = input
	return t
}

func (t TypeInfo) WithElemOID(elemOID uint32) TypeInfo {
	t.ElemOID = elemOID
	return t
}

// WithElemType sets the element descriptor used to dispatch array element
// encoding/decoding. Required whenever Typesend is "array_send" (equivalently
// Typereceive is "array_recv"); see Encode and Decode.
func (t TypeInfo) WithElemType(elemType TypeInfo) TypeInfo {
	t.ElemType = &elemType
	return t
}

func (t TypeInfo) WithBaseOID(baseOID uint32) TypeInfo {
	t.BaseOID = baseOID
	return t
}

func (t TypeInfo) WithCompOIDs(compOIDs []uint32) TypeInfo {
	t.CompOIDs = compOIDs
	return t
}

func (t TypeInfo) WithCompTypes(compTypes []TypeInfo) TypeInfo {
	t.CompTypes = compTypes
	return t
}

// arrayOf builds the TypeInfo for the array type wrapping elem, given the
// array type's own OID and name.
func arrayOf(oid uint32, name string, elem TypeInfo) TypeInfo {
	return NewTypeInfo(oid).
		WithName(name).
		WithTypesend("array_send").
		WithTypereceive("array_recv").
		WithTypelen(-1).
		WithElemOID(elem.OID).
		WithElemType(elem)
}

// Builtins returns the fixed set of TypeInfo descriptors for the scalar and
// array types named throughout this package, keyed by type name (e.g.
// "int4", "_int4" for its array). It is a convenience for tests and callers
// bootstrapping without a live pg_type connection; a production client
// ordinarily populates TypeInfo from a catalog query instead.
func Builtins() map[string]TypeInfo {
	boolT := NewTypeInfo(BoolOID).WithName("bool").WithTypesend("boolsend").WithTypereceive("boolrecv").WithTypelen(1)
	int2T := NewTypeInfo(Int2OID).WithName("int2").WithTypesend("int2send").WithTypereceive("int2recv").WithTypelen(2)
	int4T := NewTypeInfo(Int4OID).WithName("int4").WithTypesend("int4send").WithTypereceive("int4recv").WithTypelen(4)
	int8T := NewTypeInfo(Int8OID).WithName("int8").WithTypesend("int8send").WithTypereceive("int8recv").WithTypelen(8)
	oidT := NewTypeInfo(OIDOID).WithName("oid").WithTypesend("oidsend").WithTypereceive("oidrecv").WithTypelen(4)
	float4T := NewTypeInfo(Float4OID).WithName("float4").WithTypesend("float4send").WithTypereceive("float4recv").WithTypelen(4)
	float8T := NewTypeInfo(Float8OID).WithName("float8").WithTypesend("float8send").WithTypereceive("float8recv").WithTypelen(8)
	textT := NewTypeInfo(TextOID).WithName("text").WithTypesend("textsend").WithTypereceive("textrecv").WithTypelen(-1)
	varcharT := NewTypeInfo(VarcharOID).WithName("varchar").WithTypesend("varcharsend").WithTypereceive("varcharrecv").WithTypelen(-1)
	bpcharT := NewTypeInfo(BPCharOID).WithName("bpchar").WithTypesend("charsend").WithTypereceive("charrecv").WithTypelen(-1)
	nameT := NewTypeInfo(NameOID).WithName("name").WithTypesend("namesend").WithTypereceive("namerecv").WithTypelen(64)
	byteaT := NewTypeInfo(ByteaOID).WithName("bytea").WithTypesend("byteasend").WithTypereceive("bytearecv").WithTypelen(-1)
	uuidT := NewTypeInfo(UUIDOID).WithName("uuid").WithTypesend("uuid_send").WithTypereceive("uuid_recv").WithTypelen(16)
	dateT := NewTypeInfo(DateOID).WithName("date").WithTypesend("date_send").WithTypereceive("date_recv").WithTypelen(4)
	timeT := NewTypeInfo(TimeOID).WithName("time").WithTypesend("time_send").WithTypereceive("time_recv").WithTypelen(8)
	timestampT := NewTypeInfo(TimestampOID).WithName("timestamp").WithTypesend("timestamp_send").WithTypereceive("timestamp_recv").WithTypelen(8)
	timestamptzT := NewTypeInfo(TimestamptzOID).WithName("timestamptz").WithTypesend("timestamptz_send").WithTypereceive("timestamptz_recv").WithTypelen(8)
	intervalT := NewTypeInfo(IntervalOID).WithName("interval").WithTypesend("interval_send").WithTypereceive("interval_recv").WithTypelen(16)

	m := map[string]TypeInfo{
		"bool":        boolT,
		"int2":        int2T,
		"int4":        int4T,
		"int8":        int8T,
		"oid":         oidT,
		"float4":      float4T,
		"float8":      float8T,
		"text":        textT,
		"varchar":     varcharT,
		"bpchar":      bpcharT,
		"name":        nameT,
		"bytea":       byteaT,
		"uuid":        uuidT,
		"date":        dateT,
		"time":        timeT,
		"timestamp":   timestampT,
		"timestamptz": timestamptzT,
		"interval":    intervalT,
	}

	m["_bool"] = arrayOf(BoolArrayOID, "_bool", boolT)
	m["_int2"] = arrayOf(Int2ArrayOID, "_int2", int2T)
	m["_int4"] = arrayOf(Int4ArrayOID, "_int4", int4T)
	m["_int8"] = arrayOf(Int8ArrayOID, "_int8", int8T)
	m["_oid"] = arrayOf(OIDArrayOID, "_oid", oidT)
	m["_float4"] = arrayOf(Float4ArrayOID, "_float4", float4T)
	m["_float8"] = arrayOf(Float8ArrayOID, "_float8", float8T)
	m["_text"] = arrayOf(TextArrayOID, "_text", textT)
	m["_varchar"] = arrayOf(VarcharArrayOID, "_varchar", varcharT)
	m["_bytea"] = arrayOf(ByteaArrayOID, "_bytea", byteaT)
	m["_uuid"] = arrayOf(UUIDArrayOID, "_uuid", uuidT)
	m["_date"] = arrayOf(DateArrayOID, "_date", dateT)
	m["_time"] = arrayOf(TimeArrayOID, "_time", timeT)
	m["_timestamp"] = arrayOf(TimestampArrayOID, "_timestamp", timestampT)
	m["_timestamptz"] = arrayOf(TimestamptzArrayOID, "_timestamptz", timestamptzT)
	m["_interval"] = arrayOf(IntervalArrayOID, "_interval", intervalT)

	return m
}
