// Package idcodec provides the built-in identifier codecs used by
// repositories: canonical decimal rendering for numeric primary keys and
// identity for string keys. Identifier types outside the closed set served
// by For need a caller-supplied types.IDCodec.
package idcodec

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// Signed constrains the signed integer identifier types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned constrains the unsigned integer identifier types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Floating constrains the floating-point identifier types.
type Floating interface {
	~float32 | ~float64
}

// String returns the identity codec for string-typed identifiers.
func String[T ~string]() types.IDCodec[T] { return stringCodec[T]{} }

// Int returns a codec for signed integer identifiers. Decoding parses at
// the exact bit width of T, so out-of-range literals fail rather than wrap.
func Int[T Signed]() types.IDCodec[T] { return intCodec[T]{} }

// Uint returns a codec for unsigned integer identifiers.
func Uint[T Unsigned]() types.IDCodec[T] { return uintCodec[T]{} }

// Float returns a codec for floating-point identifiers. Encoding uses the
// shortest form that round-trips exactly at T's precision.
func Float[T Floating]() types.IDCodec[T] { return floatCodec[T]{} }

// For resolves the built-in codec for ID, covering string, int, int32,
// int64, uint, uint32, uint64, float32, and float64. Any other type yields
// ErrUnsupportedIDType; pass an explicit codec to repo.New instead.
func For[ID any]() (types.IDCodec[ID], error) {
	var zero ID
	var codec any
	switch any(zero).(type) {
	case string:
		codec = String[string]()
	case int:
		codec = Int[int]()
	case int32:
		codec = Int[int32]()
	case int64:
		codec = Int[int64]()
	case uint:
		codec = Uint[uint]()
	case uint32:
		codec = Uint[uint32]()
	case uint64:
		codec = Uint[uint64]()
	case float32:
		codec = Float[float32]()
	case float64:
		codec = Float[float64]()
	default:
		return nil, fmt.Errorf("%w: %T", types.ErrUnsupportedIDType, zero)
	}
	return codec.(types.IDCodec[ID]), nil
}

type stringCodec[T ~string] struct{}

func (stringCodec[T]) EncodeID(id T) string { return string(id) }

func (stringCodec[T]) DecodeID(s string) (T, error) { return T(s), nil }

type intCodec[T Signed] struct{}

func (intCodec[T]) EncodeID(id T) string {
	return strconv.FormatInt(int64(id), 10)
}

func (intCodec[T]) DecodeID(s string) (T, error) {
	v, err := strconv.ParseInt(s, 10, bitSize[T]())
	if err != nil {
		return 0, fmt.Errorf("%w: parse %q: %v", types.ErrConversion, s, err)
	}
	return T(v), nil
}

type uintCodec[T Unsigned] struct{}

func (uintCodec[T]) EncodeID(id T) string {
	return strconv.FormatUint(uint64(id), 10)
}

func (uintCodec[T]) DecodeID(s string) (T, error) {
	v, err := strconv.ParseUint(s, 10, bitSize[T]())
	if err != nil {
		return 0, fmt.Errorf("%w: parse %q: %v", types.ErrConversion, s, err)
	}
	return T(v), nil
}

type floatCodec[T Floating] struct{}

func (floatCodec[T]) EncodeID(id T) string {
	return strconv.FormatFloat(float64(id), 'g', -1, bitSize[T]())
}

func (floatCodec[T]) DecodeID(s string) (T, error) {
	v, err := strconv.ParseFloat(s, bitSize[T]())
	if err != nil {
		return 0, fmt.Errorf("%w: parse %q: %v", types.ErrConversion, s, err)
	}
	return T(v), nil
}

// bitSize returns the width of T for strconv's bitSize parameter.
func bitSize[T any]() int {
	return reflect.TypeFor[T]().Bits()
}
