// Package cast converts values to their canonical string representation.
//
// It accepts strings, byte slices, [fmt.Stringer] and error values, numbers,
// booleans, string-kinded named types and pointers to any of these, using
// [cast] for the conversion itself. Nil values, including typed nil pointers,
// convert to the empty string.
package cast
