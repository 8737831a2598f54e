package pgtype

// DynKind discriminates the variant held by a Dynamic.
type DynKind int

const (
	DynNil DynKind = iota
	DynBool
	DynInt
	DynFloat
	DynString
	DynBytes
	DynArray
)

// Dynamic is the decoder's generic output container: a tagged sum of
// booleans, integers, floats, strings, byte strings, null, and nested
// lists. The decoder returns Dynamic rather than Value because array
// element types are only known through TypeInfo.ElemType; callers apply a
// type-directed reifier to turn a Dynamic back into a Value or a domain
// type. See §9 of the package's governing specification.
type Dynamic struct {
	Kind  DynKind
	Bool  bool
	Int   int64
	Float float64
	Str   string
	Bytes []byte
	Array []Dynamic
}

func NewDynNil() Dynamic              { return Dynamic{Kind: DynNil} }
func NewDynBool(b bool) Dynamic       { return Dynamic{Kind: DynBool, Bool: b} }
func NewDynInt(n int64) Dynamic       { return Dynamic{Kind: DynInt, Int: n} }
func NewDynFloat(f float64) Dynamic   { return Dynamic{Kind: DynFloat, Float: f} }
func NewDynString(s string) Dynamic   { return Dynamic{Kind: DynString, Str: s} }
func NewDynBytes(b []byte) Dynamic    { return Dynamic{Kind: DynBytes, Bytes: b} }
func NewDynArray(a []Dynamic) Dynamic { return Dynamic{Kind: DynArray, Array: a} }
