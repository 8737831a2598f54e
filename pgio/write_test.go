package pgio

import (
	"testing"
)

func TestAppendUint16(t *testing.T) {
	buf := AppendUint16(nil, 42)
	buf = AppendUint16(buf, 1)
	want := []byte{0, 42, 0, 1}
	if string(buf) != string(want) {
		t.Errorf("AppendUint16 => %v, want %v", buf, want)
	}
}

func TestAppendUint32(t *testing.T) {
	buf := AppendUint32(nil, 42)
	buf = AppendUint32(buf, 1)
	want := []byte{0, 0, 0, 42, 0, 0, 0, 1}
	if string(buf) != string(want) {
		t.Errorf("AppendUint32 => %v, want %v", buf, want)
	}
}

func TestAppendUint64(t *testing.T) {
	buf := AppendUint64(nil, 42)
	buf = AppendUint64(buf, 1)
	want := []byte{0, 0, 0, 0, 0, 0, 0, 42, 0, 0, 0, 0, 0, 0, 0, 1}
	if string(buf) != string(want) {
		t.Errorf("AppendUint64 => %v, want %v", buf, want)
	}
}

func TestAppendInt16(t *testing.T) {
	buf := AppendInt16(nil, -1)
	want := []byte{0xFF, 0xFF}
	if string(buf) != string(want) {
		t.Errorf("AppendInt16 => %v, want %v", buf, want)
	}
}

func TestAppendInt32(t *testing.T) {
	buf := AppendInt32(nil, -10957)
	want := []byte{0xFF, 0xFF, 0xD5, 0x33}
	if string(buf) != string(want) {
		t.Errorf("AppendInt32 => %v, want %v", buf, want)
	}
}

func TestAppendInt64(t *testing.T) {
	buf := AppendInt64(nil, -946684799000000)
	_, n := NextInt64(buf)
	if n != -946684799000000 {
		t.Errorf("AppendInt64 round trip => %v, want %v", n, -946684799000000)
	}
}

func TestAppendFloat32(t *testing.T) {
	buf := AppendFloat32(nil, 3.5)
	_, f := NextFloat32(buf)
	if f != 3.5 {
		t.Errorf("AppendFloat32 round trip => %v, want %v", f, 3.5)
	}
}

func TestAppendFloat64(t *testing.T) {
	buf := AppendFloat64(nil, 3.5)
	_, f := NextFloat64(buf)
	if f != 3.5 {
		t.Errorf("AppendFloat64 round trip => %v, want %v", f, 3.5)
	}
}

func TestSetInt32(t *testing.T) {
	buf := []byte{0, 0, 0, 0, 0xAA}
	SetInt32(buf, 7)
	want := []byte{0, 0, 0, 7, 0xAA}
	if string(buf) != string(want) {
		t.Errorf("SetInt32 => %v, want %v", buf, want)
	}
}
