// SPDX-License-Identifier: MIT
// Package: replica/clone
//
// populate.go — default-construct-and-populate strategy.
//
// Populate allocates new(T) and lets src fill it via CopyInto. T is fixed at
// the call site, not discovered at run time:
//
//	mgr := &Manager{Employee: Employee{Name: "Ann"}, Reports: []string{"Bob"}}
//	Populate(&mgr.Employee)   // *Employee{Name: "Ann"}; Reports are gone
//
// A *Manager cannot be passed directly unless Manager defines its own
// CopyInto(*Manager): the promoted CopyInto(*Employee) does not satisfy
// Populator[*Manager]. Narrowing therefore only happens when the caller
// explicitly addresses the base, and is the documented result in that case.

package clone

// Populate returns a fresh *T populated by src.CopyInto.
// Absent src → ErrInvalidArgument.
func Populate[T any, PT interface {
	*T
	Populator[PT]
}](src PT) (PT, error) {
	if isAbsent(src) {
		var zero PT
		return zero, absentf(MethodPopulate, "source")
	}
	dst := PT(new(T))
	src.CopyInto(dst)

	return dst, nil
}

// PopulateInto copies src into the externally supplied dst.
// Absent src or dst → ErrInvalidArgument; dst is left untouched in that case.
func PopulateInto[T any, PT interface {
	*T
	Populator[PT]
}](src, dst PT) error {
	if isAbsent(src) {
		return absentf(MethodPopulateInto, "source")
	}
	if isAbsent(dst) {
		return absentf(MethodPopulateInto, "target")
	}
	src.CopyInto(dst)

	return nil
}
