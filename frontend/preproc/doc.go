// File: doc.go
// Title: Preprocessor Package Documentation
// Description: Package documentation for the Vira line-based preprocessor.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial package documentation

/*
Package preproc implements the streaming line-based macro and include
expander that runs before the Vira lexer.

A Runner is built per preprocessing run and owns all mutable state: the
bounded macro table and the bounded include-frame stack. Input is read
one line at a time from the top of the stack; lines whose first
non-whitespace character is '#' are dispatched as directives
(#include, #define, #undef), all other lines pass through single-pass
macro expansion. #ifdef, #ifndef, and unrecognized directives are echoed
verbatim, not evaluated.

Macro expansion scans each line left to right for maximal identifier
runs and substitutes the stored replacement text. The replacement is not
re-scanned, and the scan has no notion of string literals, so macro
names inside quoted strings are substituted as well. Both behaviors are
deliberate and covered by tests.

All failures are returned as typed errors carrying the file and line
they occurred on; the Runner never terminates the process. Opened
include streams are closed exactly once, on either a clean end-of-stream
pop or an error unwind.
*/
package preproc
