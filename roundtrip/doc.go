// SPDX-License-Identifier: MIT

// Package roundtrip is the serialization fallback of replica: it copies an
// aggregate that has no custom copy logic by encoding it with a Codec and
// decoding the bytes into a fresh instance.
//
// Contract:
//
//   - Every reachable value must be representable by the codec. Before any
//     byte is written, the shape is validated; channels, funcs, unsafe
//     pointers, opaque structs (no exported fields and no marshaler, e.g. an
//     *os.File), non-empty interface fields, reference cycles and
//     codec-rejected kinds fail with clone.ErrSerialization and the path of
//     the offending value. Encoder and decoder failures are wrapped with the
//     same sentinel. No partial object is ever returned.
//   - The copy loses what the format cannot carry: unexported and "-"-tagged
//     fields come back as zero values, pointers shared inside the graph come
//     back as separate copies, and gob drops empty collections to nil.
//   - Values held in interface fields come back in the codec's generic
//     representation: a number inside a map[string]any decodes as float64
//     under JSON and as int or float64 under YAML, and a struct becomes a
//     map. Use concrete field types where exact types matter.
//   - A type is a leaf when it implements a marshaler the selected codec
//     honors (MarshalJSON for JSON, GobEncode for gob, MarshalYAML for YAML,
//     TextMarshaler where the codec supports it, and so on).
//   - Work is in-memory and bounded by the size of the graph.
//
// Codecs:
//
//	JSON()     encoding/json
//	Gob()      encoding/gob
//	MsgPack()  github.com/vmihailenco/msgpack/v5
//	YAML()     gopkg.in/yaml.v3
//	CBOR()     github.com/fxamacker/cbor/v2
//	TOML()     github.com/BurntSushi/toml (root must be a struct or map)
//
// Configuration comes from functional options or from the environment:
//
//	REPLICA_ROUNDTRIP_CODEC      codec name (default "json")
//	REPLICA_ROUNDTRIP_MAX_DEPTH  nesting limit for validation (default 64)
//
// The nesting limit counts struct fields, slice and array elements and map
// values. Following a pointer or unwrapping an interface does not add a
// level, so a linked list of n nodes nests n levels deep.
package roundtrip
