// File: preproc.go
// Title: Vira Preprocessor Runner
// Description: Implements the streaming line-based preprocessor that
//              expands macros and resolves includes before lexing.
//              Manages the bounded include-frame stack, directive
//              dispatch, and single-pass macro expansion.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial preprocessor implementation

package preproc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	viraerror "github.com/msto63/vira/foundation/core/error"
	viralog "github.com/msto63/vira/foundation/core/log"
)

// Historical resource bounds, used when Options leaves them unset
const (
	DefaultMaxMacros       = 1024
	DefaultMaxIncludeDepth = 16
)

// DefaultIncludePaths is the search order for system includes when none
// are configured
var DefaultIncludePaths = []string{"/usr/lib/vira-lang/include", "."}

// Options configures a preprocessing run
type Options struct {
	// IncludePaths are searched in order for #include <...> directives
	IncludePaths []string

	// MaxMacros bounds the macro table (default: 1024)
	MaxMacros int

	// MaxIncludeDepth bounds the include stack, counting the root
	// frame (default: 16)
	MaxIncludeDepth int

	// Logger for preprocessing operations (optional)
	Logger *viralog.Logger
}

// frame is one open source stream on the include stack
type frame struct {
	name    string
	scanner *bufio.Scanner
	closer  io.Closer // nil for the caller-owned root stream
	lineNo  int
}

// Runner executes one preprocessing run. It owns the macro table and
// the include stack; both are discarded when Run returns. A Runner is
// not safe for concurrent use and should not be reused across runs.
type Runner struct {
	macros  *MacroTable
	frames  []*frame
	logger  *viralog.Logger
	options Options
}

// New creates a preprocessor runner with the given options
func New(opts Options) *Runner {
	if opts.Logger == nil {
		opts.Logger = viralog.GetDefault()
	}
	if opts.MaxMacros == 0 {
		opts.MaxMacros = DefaultMaxMacros
	}
	if opts.MaxIncludeDepth == 0 {
		opts.MaxIncludeDepth = DefaultMaxIncludeDepth
	}
	if len(opts.IncludePaths) == 0 {
		opts.IncludePaths = DefaultIncludePaths
	}

	return &Runner{
		macros:  NewMacroTable(opts.MaxMacros),
		logger:  opts.Logger.WithField("component", "preprocessor"),
		options: opts,
	}
}

// Run reads raw source from input and writes the fully expanded text to
// output. The name identifies the root stream in diagnostics. The
// returned error is nil only when the root stream was consumed to its
// end; on error the output may be left truncated.
//
// The root stream is owned by the caller; streams opened for includes
// are closed before Run returns, on both success and error paths.
func (r *Runner) Run(input io.Reader, output io.Writer, name string) (err error) {
	timer := r.logger.StartTimer("preprocess")
	defer timer.Stop()

	r.push(&frame{name: name, scanner: bufio.NewScanner(input)})
	defer r.closeAll()

	writer := bufio.NewWriter(output)
	defer func() {
		if flushErr := writer.Flush(); flushErr != nil && err == nil {
			err = viraerror.Wrap(flushErr, "cannot write preprocessed output").
				WithCode(viraerror.CodeIO)
		}
	}()

	for len(r.frames) > 0 {
		top := r.top()

		if !top.scanner.Scan() {
			if scanErr := top.scanner.Err(); scanErr != nil {
				return viraerror.Wrap(scanErr, "cannot read source").
					WithCode(viraerror.CodeIO).
					WithPosition(top.name, top.lineNo, 0)
			}
			// End of stream: pop and resume the parent frame; end of
			// the root frame ends the run
			r.pop()
			continue
		}

		top.lineNo++
		line := top.scanner.Text()

		if isDirective(line) {
			if err := r.processDirective(line, writer, top); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintln(writer, r.expandMacros(line)); err != nil {
			return viraerror.Wrap(err, "cannot write preprocessed output").
				WithCode(viraerror.CodeIO).
				WithPosition(top.name, top.lineNo, 0)
		}
	}

	r.logger.Debug("Preprocessing completed", viralog.Fields{
		"source": name,
		"macros": r.macros.Len(),
	})
	return nil
}

// Macros exposes the macro table, mainly for tests and tooling
func (r *Runner) Macros() *MacroTable {
	return r.macros
}

// isDirective reports whether a line's first non-whitespace character
// starts a preprocessor directive
func isDirective(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t\r"), "#")
}

// processDirective dispatches on the directive keyword following '#'.
// Unknown directives and the unimplemented conditionals are echoed to
// the output verbatim.
func (r *Runner) processDirective(line string, writer io.Writer, top *frame) error {
	rest := strings.TrimLeft(line, " \t\r")[1:] // text after '#'
	rest = strings.TrimLeft(rest, " \t")

	keyword := rest
	if idx := strings.IndexAny(rest, " \t"); idx >= 0 {
		keyword = rest[:idx]
	}
	args := strings.TrimSpace(rest[len(keyword):])

	switch keyword {
	case "include":
		return r.processInclude(args, top)

	case "define":
		name := args
		value := ""
		if idx := strings.IndexAny(args, " \t"); idx >= 0 {
			name = args[:idx]
			value = strings.TrimSpace(args[idx:])
		}
		if name == "" {
			return viraerror.New("malformed #define: missing macro name").
				WithCode(viraerror.CodeDirectiveSyntax).
				WithPosition(top.name, top.lineNo, 0)
		}
		if err := r.macros.Define(name, value); err != nil {
			return attachPosition(err, top)
		}
		r.logger.Debug("Macro defined", viralog.Fields{
			"macro": name,
			"value": value,
		})
		return nil

	case "undef":
		r.macros.Undef(strings.TrimSpace(args))
		return nil

	default:
		// ifdef/ifndef and anything unrecognized: conditional
		// compilation is unimplemented, the line passes through
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return viraerror.Wrap(err, "cannot write preprocessed output").
				WithCode(viraerror.CodeIO).
				WithPosition(top.name, top.lineNo, 0)
		}
		return nil
	}
}

// processInclude parses `<path>` or `"path"` arguments, opens the file,
// and pushes a new include frame
func (r *Runner) processInclude(args string, top *frame) error {
	if args == "" {
		return viraerror.New("malformed #include: missing file name").
			WithCode(viraerror.CodeDirectiveSyntax).
			WithPosition(top.name, top.lineNo, 0)
	}

	var filename string
	var system bool

	switch args[0] {
	case '<':
		end := strings.IndexByte(args, '>')
		if end < 0 {
			return viraerror.New("malformed #include: missing closing '>'").
				WithCode(viraerror.CodeDirectiveSyntax).
				WithPosition(top.name, top.lineNo, 0)
		}
		filename = args[1:end]
		system = true
	case '"':
		end := strings.IndexByte(args[1:], '"')
		if end < 0 {
			return viraerror.New("malformed #include: missing closing '\"'").
				WithCode(viraerror.CodeDirectiveSyntax).
				WithPosition(top.name, top.lineNo, 0)
		}
		filename = args[1 : 1+end]
	default:
		return viraerror.Newf("malformed #include: expected '<' or '\"', got %q", args).
			WithCode(viraerror.CodeDirectiveSyntax).
			WithPosition(top.name, top.lineNo, 0)
	}

	if len(r.frames) >= r.options.MaxIncludeDepth {
		return viraerror.Newf("include depth exceeded: limit %d including %q",
			r.options.MaxIncludeDepth, filename).
			WithCode(viraerror.CodeIncludeDepth).
			WithPosition(top.name, top.lineNo, 0).
			WithDetail("include", filename)
	}

	file, err := r.openInclude(filename, system)
	if err != nil {
		return attachPosition(err, top)
	}

	r.push(&frame{name: filename, scanner: bufio.NewScanner(file), closer: file})
	r.logger.Debug("Include pushed", viralog.Fields{
		"include": filename,
		"depth":   len(r.frames),
	})
	return nil
}

// openInclude opens an include file. System includes search the
// configured paths in order, first match wins; quoted includes open the
// literal path.
func (r *Runner) openInclude(filename string, system bool) (*os.File, error) {
	if !system {
		file, err := os.Open(filename)
		if err != nil {
			return nil, viraerror.Wrapf(err, "cannot open include %q", filename).
				WithCode(viraerror.CodeIncludeNotFound).
				WithDetail("include", filename)
		}
		return file, nil
	}

	for _, dir := range r.options.IncludePaths {
		file, err := os.Open(filepath.Join(dir, filename))
		if err == nil {
			return file, nil
		}
	}
	return nil, viraerror.Newf("cannot locate system include %q in %v",
		filename, r.options.IncludePaths).
		WithCode(viraerror.CodeIncludeNotFound).
		WithDetail("include", filename)
}

// expandMacros performs a single left-to-right scan over one line,
// replacing each maximal identifier run that names a defined macro with
// its stored value. Replacement text is copied verbatim and never
// re-scanned. The scan is quote-blind, so names inside string literals
// are substituted too.
func (r *Runner) expandMacros(line string) string {
	var out strings.Builder

	for i := 0; i < len(line); {
		ch := line[i]
		if isIdentStart(ch) {
			start := i
			for i < len(line) && isIdentChar(line[i]) {
				i++
			}
			name := line[start:i]
			if value, ok := r.macros.Lookup(name); ok {
				out.WriteString(value)
			} else {
				out.WriteString(name)
			}
			continue
		}
		out.WriteByte(ch)
		i++
	}

	return out.String()
}

// Include stack management

func (r *Runner) push(f *frame) {
	r.frames = append(r.frames, f)
}

func (r *Runner) pop() {
	top := r.top()
	r.frames = r.frames[:len(r.frames)-1]

	if top.closer != nil {
		if err := top.closer.Close(); err != nil {
			r.logger.Warn("Failed to close include stream", viralog.Fields{
				"include": top.name,
				"error":   err.Error(),
			})
		}
	}
}

func (r *Runner) top() *frame {
	return r.frames[len(r.frames)-1]
}

// closeAll unwinds the remaining stack, closing every owned stream
// exactly once. On a clean run the stack is already empty here.
func (r *Runner) closeAll() {
	for len(r.frames) > 0 {
		r.pop()
	}
}

// attachPosition adds file/line context to a typed error that was
// created without it
func attachPosition(err error, top *frame) error {
	var verr *viraerror.Error
	if errors.As(err, &verr) && verr.Line() == 0 {
		return verr.WithPosition(top.name, top.lineNo, 0)
	}
	return err
}

// Character classes for macro identification

func isIdentStart(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || '0' <= ch && ch <= '9'
}
