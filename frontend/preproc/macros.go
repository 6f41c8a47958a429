// File: macros.go
// Title: Bounded Macro Table
// Description: Implements the macro table used by the preprocessor with
//              an explicit capacity bound and typed overflow errors.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial macro table implementation

package preproc

import (
	viraerror "github.com/msto63/vira/foundation/core/error"
)

// MacroTable maps macro names to replacement text. Capacity is fixed at
// construction; inserting a new name beyond it is a fatal preprocessing
// error, while redefining an existing name always succeeds.
type MacroTable struct {
	entries  map[string]string
	capacity int
}

// NewMacroTable creates a table bounded to the given capacity
func NewMacroTable(capacity int) *MacroTable {
	return &MacroTable{
		entries:  make(map[string]string),
		capacity: capacity,
	}
}

// Define inserts or overwrites a macro. The replacement value may be
// empty.
func (mt *MacroTable) Define(name, value string) error {
	if _, exists := mt.entries[name]; !exists && len(mt.entries) >= mt.capacity {
		return viraerror.Newf("macro table full: capacity %d reached defining %q",
			mt.capacity, name).
			WithCode(viraerror.CodeMacroTableFull).
			WithDetail("macro", name)
	}

	mt.entries[name] = value
	return nil
}

// Undef removes a macro. Removing an absent name is a silent no-op.
func (mt *MacroTable) Undef(name string) {
	delete(mt.entries, name)
}

// Lookup returns the replacement text for a defined macro
func (mt *MacroTable) Lookup(name string) (string, bool) {
	value, ok := mt.entries[name]
	return value, ok
}

// Len returns the number of defined macros
func (mt *MacroTable) Len() int {
	return len(mt.entries)
}

// Capacity returns the table's fixed capacity
func (mt *MacroTable) Capacity() int {
	return mt.capacity
}
