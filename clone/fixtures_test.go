// SPDX-License-Identifier: MIT
// Package clone_test holds the fixtures shared by the clone tests.
//
// Purpose:
//   - Person/Address reproduce the owned-sub-object scenario.
//   - Staff/Employee/Manager reproduce the base/subtype fidelity hazard.
//   - Node builds cyclic graphs for the Memo path.

package clone_test

import (
	"github.com/katalvlaran/replica/clone"
)

const (
	StreetLondon = "London Road"
	Number123    = 123
	Number321    = 321
)

// Address is owned by exactly one Person.
type Address struct {
	Street string
	Number int
}

func (a *Address) DeepCopy() *Address {
	return &Address{Street: a.Street, Number: a.Number}
}

// Person owns its names, its address and its contacts.
type Person struct {
	Names    []string
	Address  *Address
	Contacts []*Address
	Labels   map[string]*Address
}

func (p *Person) DeepCopy() *Person {
	return &Person{
		Names:    clone.Values(p.Names),
		Address:  clone.DeepCopyOrNil(p.Address),
		Contacts: clone.Slice(p.Contacts),
		Labels:   clone.Map(p.Labels),
	}
}

// CopyInto is the copy-constructor form used by Populate.
func (p *Person) CopyInto(dst *Person) {
	dst.Names = clone.Values(p.Names)
	dst.Address = clone.DeepCopyOrNil(p.Address)
	dst.Contacts = clone.Slice(p.Contacts)
	dst.Labels = clone.Map(p.Labels)
}

func newJohn() *Person {
	return &Person{
		Names:   []string{"John", "Smith"},
		Address: &Address{Street: StreetLondon, Number: Number123},
		Contacts: []*Address{
			{Street: "Baker Street", Number: 221},
			nil,
			{Street: "Abbey Road", Number: 3},
		},
		Labels: map[string]*Address{"home": {Street: StreetLondon, Number: Number123}},
	}
}

// Staff is the declared type callers hold; DeepCopy dispatches on the
// dynamic variant.
type Staff interface {
	DeepCopy() Staff
	Role() string
}

type Employee struct {
	Name    string
	Address *Address
}

func (e *Employee) Role() string { return "employee" }

func (e *Employee) DeepCopy() Staff {
	cp := &Employee{}
	e.CopyInto(cp)
	return cp
}

func (e *Employee) CopyInto(dst *Employee) {
	dst.Name = e.Name
	dst.Address = clone.DeepCopyOrNil(e.Address)
}

// Manager extends Employee with manager-only state.
type Manager struct {
	Employee
	Reports []string
	Budget  int
}

func (m *Manager) Role() string { return "manager" }

func (m *Manager) DeepCopy() Staff {
	cp := &Manager{Reports: clone.Values(m.Reports), Budget: m.Budget}
	m.Employee.CopyInto(&cp.Employee)
	return cp
}

func newManager() *Manager {
	return &Manager{
		Employee: Employee{Name: "Ann", Address: &Address{Street: StreetLondon, Number: Number123}},
		Reports:  []string{"Bob", "Eve"},
		Budget:   1000,
	}
}

// Rates is an externally owned lookup table.
type Rates map[string]int

// Invoice owns its lines and aliases the rate table.
type Invoice struct {
	Lines []*Address
	// Rates is shared by every copy of the invoice and must not be mutated.
	Rates clone.Shared[Rates]
}

func (i *Invoice) DeepCopy() *Invoice {
	return &Invoice{Lines: clone.Slice(i.Lines), Rates: i.Rates.DeepCopy()}
}

// Node is a vertex of a possibly cyclic graph.
type Node struct {
	Name  string
	Next  *Node
	Peers []*Node
}

func (n *Node) DeepCopyWith(m *clone.Memo) *Node {
	cp := &Node{Name: n.Name}
	clone.Remember(m, n, cp)
	cp.Next = clone.CopyWith(m, n.Next)
	if n.Peers != nil {
		cp.Peers = make([]*Node, len(n.Peers))
		for i, p := range n.Peers {
			cp.Peers[i] = clone.CopyWith(m, p)
		}
	}
	return cp
}

// ring builds a -> b -> c -> a with a and c as mutual peers.
func ring() *Node {
	a, b, c := &Node{Name: "a"}, &Node{Name: "b"}, &Node{Name: "c"}
	a.Next, b.Next, c.Next = b, c, a
	a.Peers = []*Node{c}
	c.Peers = []*Node{a, a}
	return a
}
