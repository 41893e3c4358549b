// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package engine implements typed GPU resources.
//
// Resources hold host copies of their contents plus the
// bytes still pending upload (staging). A Device binds
// them to a driver.GPU, allocating native resources and
// draining staging into them.
package engine

import (
	"reflect"
	"unsafe"
)

// LevelStaging holds the bytes pending upload to a
// texture mip level.
type LevelStaging struct {
	Level int
	Data  []byte
}

// checkPOD panics if T contains pointers, since its
// memory is reinterpreted as bytes.
func checkPOD[T any](fn string) {
	t := reflect.TypeFor[T]()
	if hasPointers(t) {
		panic(fn + ": " + t.String() + " contains pointers")
	}
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	}
	return true
}

// sizeOf returns the size in bytes of T.
func sizeOf[T any]() int {
	var x T
	return int(unsafe.Sizeof(x))
}

// asBytes reinterprets s as a byte slice.
// T must be pointer-free.
func asBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*sizeOf[T]())
}
