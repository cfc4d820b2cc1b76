package wasmtype

// StorageKind discriminates StorageType = ValueType ∪ {packed i8, i16}.
// The packed forms are reserved by spec §3 ("not required by the core")
// but are modeled so a struct/array FieldType can legally declare them.
type StorageKind byte

const (
	StorageValue StorageKind = iota
	StoragePackedI8
	StoragePackedI16
)

// StorageType is what a struct field or array element may hold.
type StorageType struct {
	Kind  StorageKind
	Value ValueType // meaningful only for StorageValue
}

// Storage wraps a ValueType as a StorageType.
func Storage(v ValueType) StorageType {
	return StorageType{Kind: StorageValue, Value: v}
}

// PackedI8 / PackedI16 build the two packed storage kinds.
func PackedI8() StorageType  { return StorageType{Kind: StoragePackedI8} }
func PackedI16() StorageType { return StorageType{Kind: StoragePackedI16} }

// FieldType is a (type, mutable) pair used by struct fields and array
// elements (spec §3). Name identifies a struct field within its
// declaring struct so ImmStructFieldIdx can resolve by name (spec §4.A
// "field" index space is per-struct); it is left empty for array
// elements, which have no field name to resolve.
type FieldType struct {
	Name    string
	Type    StorageType
	Mutable bool
}
