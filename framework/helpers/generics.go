package helpers

import "sort"

// CopyOf returns a shallow copy of a slice. The result is nil if the input is empty, so
// that copies of unset builder fields compare equal to the originals.
func CopyOf[V any](slice []V) []V {
	if len(slice) == 0 {
		return nil
	}
	return append([]V(nil), slice...)
}

// IfElse returns valueIfTrue or valueIfFalse depending on isTrue.
func IfElse[V any](isTrue bool, valueIfTrue, valueIfFalse V) V {
	if isTrue {
		return valueIfTrue
	}
	return valueIfFalse
}

// Sorted returns a sorted copy of a string slice, leaving the original unchanged.
func Sorted(slice []string) []string {
	ret := CopyOf(slice)
	sort.Strings(ret)
	return ret
}
