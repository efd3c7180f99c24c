// Package replica produces independent deep copies of object graphs whose
// static type may be less specific than their runtime type.
//
// Three copy paths, one error vocabulary:
//
//	clone/     — composition: each type implements DeepCopy (and optionally
//	             CopyInto); polymorphic dispatch, Shared[T] aliasing, Memo for cycles
//	registry/  — reflection: per-type strategies registered at startup, optional
//	             struct walking, proto.Clone for protobuf messages
//	roundtrip/ — serialization: encode then decode through JSON, Gob, MessagePack,
//	             YAML, CBOR or TOML, with a pre-encode shape check
//
// Every failure matches one of clone.ErrInvalidArgument, clone.ErrSerialization
// or clone.ErrUnsupportedType via errors.Is.
//
// Quick example:
//
//	var s Staff = &Manager{...}
//	cp, err := clone.DeepCopy(s) // cp is a *Manager, independent of s
//
//	go get github.com/katalvlaran/replica
package replica
