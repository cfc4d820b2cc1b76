package context

import "github.com/SethTisue/scala-wasm/wasmtype"

// HelperSpec describes one externally-provided runtime helper (spec §6):
// an imported function under module name ClassName, field name
// MethodName, with the given signature.
type HelperSpec struct {
	ClassName  string
	MethodName string
	Params     []wasmtype.StorageType
	Results    []wasmtype.StorageType
}

func s(v wasmtype.ValueType) wasmtype.StorageType { return wasmtype.Storage(v) }

func i32() wasmtype.ValueType { return wasmtype.I32() }
func i64() wasmtype.ValueType { return wasmtype.I64() }
func f32() wasmtype.ValueType { return wasmtype.F32() }
func f64() wasmtype.ValueType { return wasmtype.F64() }
func any() wasmtype.ValueType { return wasmtype.AnyRef() }

// boxedPrimitives is spec §6's closed set "p ∈ {Boolean, Byte, Short, Int,
// Float, Double}" — deliberately excludes Long, which has no box/unbox
// helper.
var boxedPrimitives = []string{"Boolean", "Byte", "Short", "Int", "Float", "Double"}

// wasmTypeOf implements spec §6's wasmType(p): Float maps to f32, Double
// to f64, everything else (the four integer-ish boxed kinds) to i32.
func wasmTypeOf(primitive string) wasmtype.ValueType {
	switch primitive {
	case "Float":
		return f32()
	case "Double":
		return f64()
	default:
		return i32()
	}
}

// jsUnaryOps and jsBinaryOps are the JS operators the runtime exposes one
// helper per, per spec §6 ("plus one helper per JS unary operator and one
// per JS binary operator").
var jsUnaryOps = []string{"typeof", "+", "-", "~", "!"}

var jsBinaryOps = []string{
	"+", "-", "*", "/", "%",
	"<", "<=", ">", ">=",
	"==", "===", "!=", "!==",
	"&&", "||", "&", "|", "^", "<<", ">>", ">>>",
	"in", "instanceof",
}

// jsBinaryOpResult implements spec §6's "result is i32 for === and !==,
// else anyref".
func jsBinaryOpResult(op string) wasmtype.ValueType {
	if op == "===" || op == "!==" {
		return i32()
	}
	return any()
}

// HelperSpecs enumerates every runtime helper from spec §6. The core
// never implements these itself; it only registers them as imports so
// the instruction selector can call them.
func HelperSpecs() []HelperSpec {
	var out []HelperSpec

	out = append(out,
		HelperSpec{"Predef", "is", []wasmtype.StorageType{s(any()), s(any())}, []wasmtype.StorageType{s(i32())}},
		HelperSpec{"Predef", "undef", nil, []wasmtype.StorageType{s(any())}},
		HelperSpec{"Predef", "isUndef", []wasmtype.StorageType{s(any())}, []wasmtype.StorageType{s(i32())}},
	)

	for _, p := range boxedPrimitives {
		wt := wasmTypeOf(p)
		out = append(out,
			HelperSpec{"BoxesRunTime", "box_" + p, []wasmtype.StorageType{s(wt)}, []wasmtype.StorageType{s(any())}},
			HelperSpec{"BoxesRunTime", "unbox_" + p, []wasmtype.StorageType{s(any())}, []wasmtype.StorageType{s(wt)}},
			HelperSpec{"BoxesRunTime", "unboxOrNull_" + p, []wasmtype.StorageType{s(any())}, []wasmtype.StorageType{s(any())}},
			HelperSpec{"BoxesRunTime", "typeTest_" + p, []wasmtype.StorageType{s(any())}, []wasmtype.StorageType{s(i32())}},
		)
	}

	out = append(out,
		HelperSpec{"RuntimeString", "emptyString", nil, []wasmtype.StorageType{s(any())}},
		HelperSpec{"RuntimeString", "stringLength", []wasmtype.StorageType{s(any())}, []wasmtype.StorageType{s(i32())}},
		HelperSpec{"RuntimeString", "stringCharAt", []wasmtype.StorageType{s(any()), s(i32())}, []wasmtype.StorageType{s(i32())}},
		HelperSpec{"RuntimeString", "jsValueToString", []wasmtype.StorageType{s(any())}, []wasmtype.StorageType{s(any())}},
		HelperSpec{"RuntimeString", "booleanToString", []wasmtype.StorageType{s(i32())}, []wasmtype.StorageType{s(any())}},
		HelperSpec{"RuntimeString", "charToString", []wasmtype.StorageType{s(i32())}, []wasmtype.StorageType{s(any())}},
		HelperSpec{"RuntimeString", "intToString", []wasmtype.StorageType{s(i32())}, []wasmtype.StorageType{s(any())}},
		HelperSpec{"RuntimeString", "longToString", []wasmtype.StorageType{s(i64())}, []wasmtype.StorageType{s(any())}},
		HelperSpec{"RuntimeString", "doubleToString", []wasmtype.StorageType{s(f64())}, []wasmtype.StorageType{s(any())}},
		HelperSpec{"RuntimeString", "stringConcat", []wasmtype.StorageType{s(any()), s(any())}, []wasmtype.StorageType{s(any())}},
		HelperSpec{"RuntimeString", "isString", []wasmtype.StorageType{s(any())}, []wasmtype.StorageType{s(i32())}},
	)

	jsInterop := []struct {
		name    string
		params  []wasmtype.StorageType
		results []wasmtype.StorageType
	}{
		{"jsValueHashCode", []wasmtype.StorageType{s(any())}, []wasmtype.StorageType{s(i32())}},
		{"jsGlobalRefGet", []wasmtype.StorageType{s(any())}, []wasmtype.StorageType{s(any())}},
		{"jsGlobalRefSet", []wasmtype.StorageType{s(any()), s(any())}, nil},
		{"jsGlobalRefTypeof", []wasmtype.StorageType{s(any())}, []wasmtype.StorageType{s(any())}},
		{"jsNewArray", nil, []wasmtype.StorageType{s(any())}},
		{"jsArrayPush", []wasmtype.StorageType{s(any()), s(any())}, nil},
		{"jsArraySpreadPush", []wasmtype.StorageType{s(any()), s(any())}, nil},
		{"jsNewObject", nil, []wasmtype.StorageType{s(any())}},
		{"jsObjectPush", []wasmtype.StorageType{s(any()), s(any()), s(any())}, nil},
		{"jsSelect", []wasmtype.StorageType{s(any()), s(any())}, []wasmtype.StorageType{s(any())}},
		{"jsSelectSet", []wasmtype.StorageType{s(any()), s(any()), s(any())}, nil},
		{"jsNew", []wasmtype.StorageType{s(any()), s(any())}, []wasmtype.StorageType{s(any())}},
		{"jsFunctionApply", []wasmtype.StorageType{s(any()), s(any())}, []wasmtype.StorageType{s(any())}},
		{"jsMethodApply", []wasmtype.StorageType{s(any()), s(any()), s(any())}, []wasmtype.StorageType{s(any())}},
		{"jsDelete", []wasmtype.StorageType{s(any()), s(any())}, nil},
		{"jsIsTruthy", []wasmtype.StorageType{s(any())}, []wasmtype.StorageType{s(i32())}},
		{"jsLinkingInfo", nil, []wasmtype.StorageType{s(any())}},
	}
	for _, h := range jsInterop {
		out = append(out, HelperSpec{"JSInterop", h.name, h.params, h.results})
	}

	for _, op := range jsUnaryOps {
		out = append(out, HelperSpec{"JSUnaryOps", helperOpName(op), []wasmtype.StorageType{s(any())}, []wasmtype.StorageType{s(any())}})
	}
	for _, op := range jsBinaryOps {
		out = append(out, HelperSpec{"JSBinaryOps", helperOpName(op),
			[]wasmtype.StorageType{s(any()), s(any())},
			[]wasmtype.StorageType{s(jsBinaryOpResult(op))}})
	}

	return out
}

// helperOpName turns an operator symbol into a valid import field name.
var opNames = map[string]string{
	"+": "plus", "-": "minus", "*": "times", "/": "div", "%": "mod",
	"<": "lt", "<=": "le", ">": "gt", ">=": "ge",
	"==": "eq", "===": "strictEq", "!=": "neq", "!==": "strictNeq",
	"&&": "and", "||": "or", "&": "bitAnd", "|": "bitOr", "^": "bitXor",
	"<<": "shl", ">>": "shr", ">>>": "ushr",
	"in": "in", "instanceof": "instanceof", "~": "bitNot", "!": "not", "typeof": "typeof",
}

func helperOpName(op string) string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return op
}
