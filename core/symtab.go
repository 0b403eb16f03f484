package core

import (
	"fmt"
	"sort"
)

// SymbolTable records the variables and functions of one translation.
type SymbolTable struct {
	// next is the address the next variable receives.
	next int

	variables map[string]int
	functions map[string]int
}

// NewSymbolTable creates an empty table whose first variable is placed at
// base.
func NewSymbolTable(base int) *SymbolTable {
	return &SymbolTable{
		next:      base,
		variables: make(map[string]int),
		functions: make(map[string]int),
	}
}

// AllocateVariable gives the name the next free address.
func (s *SymbolTable) AllocateVariable(name string) (int, error) {
	if _, found := s.variables[name]; found {
		return 0, fmt.Errorf("variable %s is already declared", name)
	}

	addr := s.next
	s.variables[name] = addr
	s.next++

	return addr, nil
}

// Reserve adds cells after the most recently declared variable.
func (s *SymbolTable) Reserve(cells int) {
	if cells < 0 {
		panic("negative reservation")
	}

	s.next += cells
}

// RegisterFunction binds a function name to its entry term index.
func (s *SymbolTable) RegisterFunction(name string, entry int) error {
	if _, found := s.functions[name]; found {
		return fmt.Errorf("function %s is already defined", name)
	}

	s.functions[name] = entry

	return nil
}

// Variable returns the address of a variable.
func (s *SymbolTable) Variable(name string) (int, bool) {
	addr, found := s.variables[name]
	return addr, found
}

// Function returns the entry term index of a function.
func (s *SymbolTable) Function(name string) (int, bool) {
	entry, found := s.functions[name]
	return entry, found
}

// NextAddress returns the address the next variable would receive.
func (s *SymbolTable) NextAddress() int {
	return s.next
}

// Variables returns a copy of the variable table.
func (s *SymbolTable) Variables() map[string]int {
	return copyTable(s.variables)
}

// Functions returns a copy of the function table.
func (s *SymbolTable) Functions() map[string]int {
	return copyTable(s.functions)
}

// VariableNames lists variables in address order.
func (s *SymbolTable) VariableNames() []string {
	return sortedNames(s.variables)
}

// FunctionNames lists functions in entry order.
func (s *SymbolTable) FunctionNames() []string {
	return sortedNames(s.functions)
}

func copyTable(m map[string]int) map[string]int {
	c := make(map[string]int, len(m))
	for k, v := range m {
		c[k] = v
	}

	return c
}

func sortedNames(m map[string]int) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}

	sort.Slice(names, func(i, j int) bool {
		return m[names[i]] < m[names[j]]
	})

	return names
}
