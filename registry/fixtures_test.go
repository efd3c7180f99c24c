// SPDX-License-Identifier: MIT
// Package registry_test holds fixtures for registry tests. Every type here is
// plain data: no fixture implements its own copy unless the test is about it.

package registry_test

import "time"

type Address struct {
	Street string
	Number int
}

type Person struct {
	Names   []string
	Address *Address
	Born    time.Time
	Tags    map[string][]string
	Backup  *Address
	Scores  [3]int
	Extra   any
}

func newJohn() *Person {
	home := &Address{Street: "London Road", Number: 123}
	return &Person{
		Names:   []string{"John", "Smith"},
		Address: home,
		Born:    time.Date(1980, time.May, 4, 0, 0, 0, 0, time.UTC),
		Tags:    map[string][]string{"lang": {"en", "fr"}},
		Backup:  home,
		Scores:  [3]int{1, 2, 3},
		Extra:   map[string]any{"k": []any{"v", 1}},
	}
}

type Staff interface {
	DeepCopy() Staff
	Role() string
}

type Employee struct {
	Name string
}

func (e *Employee) DeepCopy() Staff {
	return &Employee{Name: e.Name}
}

func (e *Employee) Role() string {
	return "employee"
}

type Manager struct {
	Employee
	Reports []string
}

func (m *Manager) DeepCopy() Staff {
	return &Manager{Employee: Employee{Name: m.Name}, Reports: append([]string(nil), m.Reports...)}
}

func (m *Manager) Role() string {
	return "manager"
}

type Team struct {
	Lead    Staff
	Members []Staff
}

type Node struct {
	Name string
	Next *Node
}

func chain(n int) *Node {
	var head *Node
	for i := n; i > 0; i-- {
		head = &Node{Name: string(rune('a' + i - 1)), Next: head}
	}
	return head
}

type Watcher struct {
	Name   string
	Events chan int
}

type Hook struct {
	OnCopy func()
}

type Account struct {
	Owner  string
	secret string
}

// Catalog is a shared, read-only lookup table.
type Catalog struct {
	Entries map[string]int
}

type Order struct {
	Lines   []*Address
	Catalog *Catalog
}

// Bag returns its underlying map type from DeepCopy.
type Bag map[string]int

func (b Bag) DeepCopy() map[string]int {
	out := make(map[string]int, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

type Box struct {
	Any any
}
