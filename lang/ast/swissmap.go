package ast

import "github.com/dolthub/swiss"

// swissMap is the name -> *Declaration index backing every namespace scope
// in this package (function scopes scan their Params instead). A
// namespace's declaration count is unbounded and every insertion already
// needs a presence probe, which is exactly the access pattern
// github.com/dolthub/swiss is built for (adapted from nenuphar's runtime Map
// value in its lang/machine package, credited in DESIGN.md).
type swissMap struct {
	m *swiss.Map[string, *Declaration]
}

func newSwissMap() *swissMap {
	return &swissMap{m: swiss.NewMap[string, *Declaration](8)}
}

func (s *swissMap) Get(name string) (*Declaration, bool) {
	return s.m.Get(name)
}

func (s *swissMap) Put(name string, decl *Declaration) {
	s.m.Put(name, decl)
}
