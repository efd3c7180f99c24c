// SPDX-License-Identifier: MIT
// Package: replica/roundtrip
//
// codec.go — the Codec abstraction and the built-in codec table.
// AI-Hints:
//   • JSON is the default: widest support, human-readable failures.
//   • Gob and MsgPack are the compact choices; CBOR for interop.
//   • TOML only accepts tables at the root (struct or map).

package roundtrip

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Codec encodes a value to bytes and decodes bytes into a pointer.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Built-in codec names.
const (
	NameJSON    = "json"
	NameGob     = "gob"
	NameMsgPack = "msgpack"
	NameYAML    = "yaml"
	NameCBOR    = "cbor"
	NameTOML    = "toml"
)

// builtin is a Codec plus the shape rules validation applies for it.
type builtin struct {
	name      string
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error

	leaves      []reflect.Type // marshaler interfaces the codec honors
	tag         string         // struct tag whose "-" value skips a field; "" for none
	noComplex   bool           // complex64/complex128 are not representable
	textKeys    bool           // map keys must be strings, integers or TextMarshalers
	stringKeys  bool           // map keys must be strings
	tableAtRoot bool           // root must be a struct or a map
}

func (b *builtin) Name() string {
	return b.name
}

func (b *builtin) Marshal(v any) ([]byte, error) {
	return b.marshal(v)
}

func (b *builtin) Unmarshal(data []byte, v any) error {
	return b.unmarshal(data, v)
}

// JSON returns the encoding/json codec.
func JSON() Codec {
	return &builtin{
		name:      NameJSON,
		marshal:   json.Marshal,
		unmarshal: json.Unmarshal,
		leaves:    []reflect.Type{jsonMarshaler, textMarshaler},
		tag:       "json",
		noComplex: true,
		textKeys:  true,
	}
}

// Gob returns the encoding/gob codec.
func Gob() Codec {
	return &builtin{
		name:   NameGob,
		leaves: []reflect.Type{gobEncoder, binaryMarshaler, textMarshaler},
		marshal: func(v any) ([]byte, error) {
			var buf bytes.Buffer
			if err := gob.NewEncoder(&buf).Encode(v); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
		unmarshal: func(data []byte, v any) error {
			return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
		},
	}
}

// MsgPack returns the MessagePack codec.
func MsgPack() Codec {
	return &builtin{
		name:      NameMsgPack,
		marshal:   msgpack.Marshal,
		unmarshal: msgpack.Unmarshal,
		leaves:    []reflect.Type{msgpackEncoder, msgpackMarsh, binaryMarshaler, textMarshaler},
		tag:       "msgpack",
		noComplex: true,
	}
}

// YAML returns the YAML codec.
func YAML() Codec {
	return &builtin{
		name:      NameYAML,
		marshal:   yaml.Marshal,
		unmarshal: yaml.Unmarshal,
		leaves:    []reflect.Type{yamlMarshaler, textMarshaler},
		tag:       "yaml",
		noComplex: true,
	}
}

// CBOR returns the CBOR codec.
func CBOR() Codec {
	return &builtin{
		name:      NameCBOR,
		marshal:   cbor.Marshal,
		unmarshal: cbor.Unmarshal,
		leaves:    []reflect.Type{cborMarshaler, binaryMarshaler},
		tag:       "cbor",
		noComplex: true,
	}
}

// TOML returns the TOML codec.
func TOML() Codec {
	return &builtin{
		name:        NameTOML,
		marshal:     toml.Marshal,
		unmarshal:   toml.Unmarshal,
		leaves:      []reflect.Type{tomlMarshaler, textMarshaler},
		tag:         "toml",
		noComplex:   true,
		stringKeys:  true,
		tableAtRoot: true,
	}
}

var codecs = map[string]func() Codec{
	NameJSON:    JSON,
	NameGob:     Gob,
	NameMsgPack: MsgPack,
	NameYAML:    YAML,
	NameCBOR:    CBOR,
	NameTOML:    TOML,
}

// CodecByName returns the built-in codec registered under name.
func CodecByName(name string) (Codec, error) {
	mk, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownCodec, name, CodecNames())
	}

	return mk(), nil
}

// CodecNames lists the built-in codec names in sorted order.
func CodecNames() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// rulesOf returns the shape rules of c; custom codecs get none.
func rulesOf(c Codec) *builtin {
	if b, ok := c.(*builtin); ok {
		return b
	}

	return &builtin{leaves: anyMarshaler}
}

// integerOrString reports whether k can key a JSON object without a
// TextMarshaler.
func integerOrString(k reflect.Kind) bool {
	switch k {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}
