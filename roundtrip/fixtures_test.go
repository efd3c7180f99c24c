// SPDX-License-Identifier: MIT
// Package roundtrip_test holds shared fixtures for the round-trip tests.

package roundtrip_test

import (
	"encoding/json"
	"time"

	"github.com/katalvlaran/replica/roundtrip"
)

type Owner struct {
	Name string
	Age  int
}

// Report is representable by every built-in codec.
type Report struct {
	Title   string
	Pages   int
	Ratio   float64
	Draft   bool
	Created time.Time
	Tags    []string
	Counts  map[string]int
	Owner   *Owner
	Editors []Owner
}

func newReport() *Report {
	return &Report{
		Title:   "quarterly",
		Pages:   12,
		Ratio:   0.5,
		Draft:   true,
		Created: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Tags:    []string{"finance", "q1"},
		Counts:  map[string]int{"figures": 4, "tables": 2},
		Owner:   &Owner{Name: "John", Age: 40},
		Editors: []Owner{{Name: "Jane", Age: 35}},
	}
}

type Node struct {
	Name string
	Next *Node
}

func chain(n int) *Node {
	head := &Node{Name: "n0"}
	cur := head
	for i := 1; i < n; i++ {
		cur.Next = &Node{Name: "n"}
		cur = cur.Next
	}

	return head
}

type Signal struct {
	Z complex128
}

type Point struct {
	X, Y int
}

type Grid struct {
	Cells map[Point]int
}

type Sparse struct {
	Rows map[int]string
}

type Holder struct {
	Label  string
	Format interface{ Format() string }
}

type Watcher struct {
	Name   string
	Events chan int
}

type Hook struct {
	Name   string
	OnCopy func()
}

type Secret struct {
	Name string
	pin  int
}

type Skipped struct {
	Name  string
	Cache chan int `json:"-"`
}

// countingCodec wraps JSON and counts encode calls.
type countingCodec struct {
	inner   roundtrip.Codec
	encodes int
}

func (c *countingCodec) Name() string {
	return "counting"
}

func (c *countingCodec) Marshal(v any) ([]byte, error) {
	c.encodes++
	return c.inner.Marshal(v)
}

func (c *countingCodec) Unmarshal(data []byte, v any) error {
	return c.inner.Unmarshal(data, v)
}

type plain string

func (p plain) Format() string {
	return string(p)
}

// Token marshals itself for JSON only; its state is unexported.
type Token struct {
	raw string
}

func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.raw)
}

func (t *Token) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &t.raw)
}

type Badge struct {
	Name  string
	Token Token
}

type Payload struct {
	Fields map[string]any
}
