package semantics

import (
	"fmt"
	"slices"
)

type Kind int

const (
	KindRegister Kind = iota
	KindFunction
	KindParameter
	KindVariable
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindRegister:
		return "register"
	case KindFunction:
		return "function"
	case KindParameter:
		return "parameter"
	case KindVariable:
		return "variable"
	case KindLiteral:
		return "literal"
	}
	return "??"
}

// ValueKinds are the kinds a name may have when used as a value.
var ValueKinds = []Kind{KindVariable, KindParameter}

type Type int

const (
	TypeInt Type = iota
	TypeUnsigned
)

func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeUnsigned:
		return "unsigned"
	}
	return "??"
}

// ParseType maps a type keyword to its Type.
func ParseType(text string) (Type, bool) {
	switch text {
	case "int":
		return TypeInt, true
	case "unsigned":
		return TypeUnsigned, true
	}
	return 0, false
}

type Symbol struct {
	Name    string
	Kind    Kind
	Type    Type
	Ordinal int // position used for storage offsets, 0 for functions and literals
}

func (s Symbol) String() string {
	return fmt.Sprintf("%s %s %s #%d", s.Kind, s.Type, s.Name, s.Ordinal)
}

// SymbolTable is a single stack of symbols. A function scope is the suffix
// pushed after its mark; leaving the scope truncates back to the mark.
type SymbolTable struct {
	store []*Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		store: make([]*Symbol, 0),
	}
}

// Push appends sym and returns the stored entry.
func (st *SymbolTable) Push(sym Symbol) *Symbol {
	stored := &sym
	st.store = append(st.store, stored)
	return stored
}

// Lookup finds the most recently pushed symbol named name whose kind is one
// of kinds.
func (st *SymbolTable) Lookup(name string, kinds ...Kind) (*Symbol, bool) {
	for i := len(st.store) - 1; i >= 0; i-- {
		sym := st.store[i]
		if sym.Name == name && slices.Contains(kinds, sym.Kind) {
			return sym, true
		}
	}
	return nil, false
}

func (st *SymbolTable) Len() int {
	return len(st.store)
}

// Truncate drops every entry past the first n.
func (st *SymbolTable) Truncate(n int) {
	if n < 0 || n >= len(st.store) {
		return
	}
	clear(st.store[n:])
	st.store = st.store[:n]
}

// EnterScope returns the mark ExitScope restores to.
func (st *SymbolTable) EnterScope() int {
	return st.Len()
}

// ExitScope drops every symbol pushed after mark.
func (st *SymbolTable) ExitScope(mark int) {
	st.Truncate(mark)
}

// Symbols returns a copy of the visible entries in push order.
func (st *SymbolTable) Symbols() []Symbol {
	res := make([]Symbol, 0, len(st.store))
	for _, sym := range st.store {
		res = append(res, *sym)
	}
	return res
}
