// SPDX-License-Identifier: MIT

package pixel

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for a name outside the table.
var ErrUnknownKind = errors.New("pixel: unknown element kind")

// Kind tags one supported element type.
type Kind int

const (
	KindInvalid Kind = iota
	KindBit
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindFloat32
	KindFloat64
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindBit:     "bit",
	KindInt8:    "int8",
	KindUint8:   "uint8",
	KindInt16:   "int16",
	KindUint16:  "uint16",
	KindInt32:   "int32",
	KindUint32:  "uint32",
	KindInt64:   "int64",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

// kindSizes holds the storage size in bytes; bits are stored as bool.
var kindSizes = [...]int{
	KindBit:     1,
	KindInt8:    1,
	KindUint8:   1,
	KindInt16:   2,
	KindUint16:  2,
	KindInt32:   4,
	KindUint32:  4,
	KindInt64:   8,
	KindFloat32: 4,
	KindFloat64: 8,
}

// String returns the canonical lower-case name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool { return k > KindInvalid && int(k) < len(kindNames) }

// Size returns the number of bytes one element occupies, 0 for invalid kinds.
func (k Kind) Size() int {
	if !k.Valid() {
		return 0
	}

	return kindSizes[k]
}

// IsFloat reports whether k is a floating point kind.
func (k Kind) IsFloat() bool { return k == KindFloat32 || k == KindFloat64 }

// ParseKind maps a name (case-insensitive, a few common aliases) to a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bit", "bool", "boolean":
		return KindBit, nil
	case "int8", "byte":
		return KindInt8, nil
	case "uint8", "ubyte":
		return KindUint8, nil
	case "int16", "short":
		return KindInt16, nil
	case "uint16", "ushort":
		return KindUint16, nil
	case "int32", "int":
		return KindInt32, nil
	case "uint32", "uint":
		return KindUint32, nil
	case "int64", "long":
		return KindInt64, nil
	case "float32", "float":
		return KindFloat32, nil
	case "float64", "double":
		return KindFloat64, nil
	}

	return KindInvalid, fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownKind)
}

// KindOf returns the Kind of the type parameter, KindInvalid for types
// outside the table. Named types report the kind of their underlying type.
func KindOf[T any]() Kind {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Bool:
		return KindBit
	case reflect.Int8:
		return KindInt8
	case reflect.Uint8:
		return KindUint8
	case reflect.Int16:
		return KindInt16
	case reflect.Uint16:
		return KindUint16
	case reflect.Int32:
		return KindInt32
	case reflect.Uint32:
		return KindUint32
	case reflect.Int64:
		return KindInt64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	}

	return KindInvalid
}
