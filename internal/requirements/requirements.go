package requirements

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// specPattern matches a package name followed by an optional version
// constraint. The name must start with an alphanumeric; the constraint, when
// present, starts with a comparison operator and is carried verbatim.
var specPattern = regexp.MustCompile(`^([a-zA-Z0-9][a-zA-Z0-9._-]*)([=><!~]+.*)?$`)

// maxLineLen caps a single requirement line at 1MB.
const maxLineLen = 1 << 20

// Requirement is one parsed entry from a requirement list.
type Requirement struct {
	Name       string
	Constraint string // includes the operator, e.g. "==1.2.3"; empty if none
}

// Spec reconstructs the original specifier text exactly.
func (r Requirement) Spec() string {
	return r.Name + r.Constraint
}

// Skip records a line that was rejected during parsing. Skips are
// diagnostics, never failures.
type Skip struct {
	LineNo int
	Line   string
}

func (s Skip) String() string {
	return fmt.Sprintf("line %d: skipping invalid line: %s", s.LineNo, s.Line)
}

// ParseLine parses a single trimmed, non-empty, non-comment line. The second
// return value is false when the line does not match the specifier pattern.
func ParseLine(line string) (Requirement, bool) {
	m := specPattern.FindStringSubmatch(line)
	if m == nil {
		return Requirement{}, false
	}
	return Requirement{Name: m[1], Constraint: m[2]}, true
}

// Parse reads requirement lines in order, returning accepted requirements and
// skip diagnostics for lines that fail the specifier pattern. Blank lines and
// #-prefixed comments are ignored silently.
func Parse(lines []string) ([]Requirement, []Skip) {
	var reqs []Requirement
	var skips []Skip

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		req, ok := ParseLine(line)
		if !ok {
			skips = append(skips, Skip{LineNo: i + 1, Line: line})
			continue
		}
		reqs = append(reqs, req)
	}

	return reqs, skips
}

// ParseFile reads a requirement file and parses its lines. A missing or
// unreadable file is an error; malformed lines inside the file are not.
func ParseFile(path string) ([]Requirement, []Skip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	// The default 64KB token limit is too small for files with very long
	// lines; a bad line should be skipped, not abort the whole parse.
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	reqs, skips := Parse(lines)
	return reqs, skips, nil
}
