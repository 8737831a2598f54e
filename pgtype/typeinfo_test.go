package pgtype

import "testing"

func TestNewTypeInfoZeroValue(t *testing.T) {
	ti := NewTypeInfo(42)
	if ti.OID != 42 {
		t.Errorf("OID = %v, want 42", ti.OID)
	}
	if ti.Name != "" || ti.Typesend != "" || ti.ElemType != nil {
		t.Errorf("NewTypeInfo(42) = %+v, want every other field zero", ti)
	}
}

func TestWithSettersReturnModifiedCopy(t *testing.T) {
	base := NewTypeInfo(23)
	named := base.WithName("int4").WithTypesend("int4send").WithTypereceive("int4recv").WithTypelen(4)

	if base.Name != "" {
		t.Errorf("base mutated: Name = %q, want empty", base.Name)
	}
	if named.Name != "int4" || named.Typesend != "int4send" || named.Typereceive != "int4recv" || named.Typelen != 4 {
		t.Errorf("named = %+v, want name/typesend/typereceive/typelen set", named)
	}
}

func TestWithElemTypeSetsPointerIndependently(t *testing.T) {
	elem := NewTypeInfo(23).WithName("int4")
	arr := NewTypeInfo(1007).WithName("_int4").WithElemType(elem)

	if arr.ElemType == nil {
		t.Fatal("ElemType is nil")
	}
	if arr.ElemType.Name != "int4" {
		t.Errorf("ElemType.Name = %q, want int4", arr.ElemType.Name)
	}

	elem.Name = "mutated"
	if arr.ElemType.Name == "mutated" {
		t.Error("mutating the local elem variable after WithElemType changed arr.ElemType; want a copy")
	}
}

func TestWithCompOidsAndCompTypesReserved(t *testing.T) {
	comp := NewTypeInfo(16400).
		WithCompOIDs([]uint32{23, 25}).
		WithCompTypes([]TypeInfo{NewTypeInfo(23), NewTypeInfo(25)})

	if len(comp.CompOIDs) != 2 || comp.CompOIDs[0] != 23 || comp.CompOIDs[1] != 25 {
		t.Errorf("CompOIDs = %v, want [23 25]", comp.CompOIDs)
	}
	if len(comp.CompTypes) != 2 {
		t.Errorf("CompTypes = %v, want 2 entries", comp.CompTypes)
	}
}

func TestBuiltinsScalarNames(t *testing.T) {
	b := Builtins()
	for _, name := range []string{
		"bool", "int2", "int4", "int8", "oid", "float4", "float8",
		"text", "varchar", "bpchar", "name", "bytea", "uuid",
		"date", "time", "timestamp", "timestamptz", "interval",
	} {
		ti, ok := b[name]
		if !ok {
			t.Errorf("Builtins() missing %q", name)
			continue
		}
		if ti.Name != name {
			t.Errorf("Builtins()[%q].Name = %q, want %q", name, ti.Name, name)
		}
	}
}

func TestBuiltinsArrayElemType(t *testing.T) {
	b := Builtins()
	arr, ok := b["_int4"]
	if !ok {
		t.Fatal("Builtins() missing _int4")
	}
	if arr.Typesend != "array_send" || arr.Typereceive != "array_recv" {
		t.Errorf("_int4 typesend/typereceive = %q/%q, want array_send/array_recv", arr.Typesend, arr.Typereceive)
	}
	if arr.ElemType == nil || arr.ElemType.OID != Int4OID {
		t.Errorf("_int4.ElemType = %+v, want OID %d", arr.ElemType, Int4OID)
	}
	if arr.ElemOID != Int4OID {
		t.Errorf("_int4.ElemOID = %v, want %v", arr.ElemOID, Int4OID)
	}
}

func TestBuiltinsOIDsMatchPgCatalog(t *testing.T) {
	b := Builtins()
	cases := map[string]uint32{
		"bool":        BoolOID,
		"int4":        Int4OID,
		"uuid":        UUIDOID,
		"timestamptz": TimestamptzOID,
		"_int4":       Int4ArrayOID,
		"_uuid":       UUIDArrayOID,
	}
	for name, wantOID := range cases {
		if b[name].OID != wantOID {
			t.Errorf("Builtins()[%q].OID = %v, want %v", name, b[name].OID, wantOID)
		}
	}
}
