package tmpl

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/saylorsolutions/strobf/pkg/obf"
)

type defKind int

const (
	kindString defKind = iota
	kindWide
	kindRandom
)

type definition struct {
	name    string
	kind    defKind
	text    string
	numType obf.NumType
	line    int
	col     int
}

var namePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// parseDefs reads a definitions file: one "name = value" per line, where value
// is a Go-quoted string, an L-prefixed Go-quoted string for the UTF-16 width,
// or "random TYPE" for a deterministic random constant.
// Blank lines and lines starting with # are skipped.
// The line and the column of each value are recorded, since they feed entropy derivation.
func parseDefs(r io.Reader) ([]definition, error) {
	var (
		defs    []definition
		seen    = map[string]int{}
		scanner = bufio.NewScanner(r)
		lineNum int
	)
	for scanner.Scan() {
		lineNum++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: expected \"name = value\"", lineNum)
		}
		def := definition{
			name: strings.TrimSpace(name),
			line: lineNum,
			col:  len(name) + countLeadingSpace(value) + 2,
		}
		if !namePattern.MatchString(def.name) {
			return nil, fmt.Errorf("line %d: %q is not a valid identifier", lineNum, def.name)
		}
		if prev, dup := seen[def.name]; dup {
			return nil, fmt.Errorf("line %d: %q already defined on line %d", lineNum, def.name, prev)
		}
		seen[def.name] = lineNum

		value = strings.TrimSpace(value)
		switch {
		case strings.HasPrefix(value, `"`):
			text, err := strconv.Unquote(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad string literal: %v", lineNum, err)
			}
			def.kind = kindString
			def.text = text
		case strings.HasPrefix(value, `L"`):
			text, err := strconv.Unquote(value[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: bad wide string literal: %v", lineNum, err)
			}
			def.kind = kindWide
			def.text = text
		case strings.HasPrefix(value, "random"):
			fields := strings.Fields(value)
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: expected \"random TYPE\"", lineNum)
			}
			numType, err := obf.ParseNumType(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", lineNum, err)
			}
			def.kind = kindRandom
			def.numType = numType
		default:
			return nil, fmt.Errorf("line %d: value must be a quoted string, an L-prefixed quoted string, or \"random TYPE\"", lineNum)
		}
		defs = append(defs, def)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("no definitions found")
	}
	return defs, nil
}

// countLeadingSpace returns the number of bytes before the value token, so the
// recorded column points at the literal itself. One-based, like compiler columns.
func countLeadingSpace(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t"))
}
