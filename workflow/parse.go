package workflow

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Marlinski/advent-of-code-2023/partition"
)

// Parse reads a workflow listing followed by an optional list of parts.
//
// Each non-blank line is either a workflow, "px{a<2006:qkq,m>2090:A,rfg}",
// or a part, "{x=787,m=2655,a=1222,s=2876}". Lines starting with '{' are parts.
// Surrounding whitespace and blank lines are ignored.
//
// Parse only checks the text; references between workflows are checked by
// Validate and Build. Errors wrap ErrSyntax or ErrDuplicateWorkflow and carry
// the 1-based line number.
func Parse(text string) (*System, error) {
	sys := &System{Workflows: make(map[string]*Workflow)}

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lineNo := i + 1

		if strings.HasPrefix(line, "{") {
			part, err := ParsePart(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			sys.Parts = append(sys.Parts, part)

			continue
		}

		w, err := ParseWorkflow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if _, dup := sys.Workflows[w.Name]; dup {
			return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrDuplicateWorkflow, w.Name)
		}
		sys.Workflows[w.Name] = w
		sys.Order = append(sys.Order, w.Name)
	}

	return sys, nil
}

// ParseWorkflow parses one workflow line such as "qqz{s>2770:qs,m<1801:hdj,R}".
// The last entry is the default destination; every other entry is
// "<dim><op><literal>:<dest>" with op one of '<' or '>'.
func ParseWorkflow(line string) (*Workflow, error) {
	line = strings.TrimSpace(line)
	open := strings.IndexByte(line, '{')
	if open < 0 || !strings.HasSuffix(line, "}") {
		return nil, fmt.Errorf("%w: want name{rules}, got %q", ErrSyntax, line)
	}

	name := line[:open]
	if !isIdent(name) {
		return nil, fmt.Errorf("%w: bad workflow name %q", ErrSyntax, name)
	}
	if isTerminal(canonical(name)) {
		return nil, fmt.Errorf("%w: workflow name %q is reserved", ErrSyntax, name)
	}

	entries := strings.Split(line[open+1:len(line)-1], ",")
	w := &Workflow{Name: name, Rules: make([]Rule, 0, len(entries)-1)}

	for _, entry := range entries[:len(entries)-1] {
		r, err := parseRule(entry)
		if err != nil {
			return nil, fmt.Errorf("workflow %q: %w", name, err)
		}
		w.Rules = append(w.Rules, r)
	}

	def := entries[len(entries)-1]
	if !isIdent(def) {
		return nil, fmt.Errorf("%w: workflow %q: bad default destination %q", ErrSyntax, name, def)
	}
	w.Default = canonical(def)

	return w, nil
}

// parseRule parses "a<2006:qkq".
func parseRule(s string) (Rule, error) {
	cond, dest, ok := strings.Cut(s, ":")
	if !ok {
		return Rule{}, fmt.Errorf("%w: rule %q has no destination", ErrSyntax, s)
	}
	if !isIdent(dest) {
		return Rule{}, fmt.Errorf("%w: rule %q: bad destination %q", ErrSyntax, s, dest)
	}

	at := strings.IndexAny(cond, "<>")
	if at <= 0 {
		return Rule{}, fmt.Errorf("%w: rule %q: want <dim><op><literal>", ErrSyntax, s)
	}
	dim := cond[:at]
	if !isIdent(dim) {
		return Rule{}, fmt.Errorf("%w: rule %q: bad dimension %q", ErrSyntax, s, dim)
	}
	op := partition.LessThan
	if cond[at] == '>' {
		op = partition.GreaterThan
	}
	lit, err := strconv.ParseInt(cond[at+1:], 10, 64)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: rule %q: %v", ErrSyntax, s, err)
	}

	return Rule{
		Pred: partition.Predicate{Dim: partition.Dimension(dim), Op: op, Literal: lit},
		Dest: canonical(dest),
	}, nil
}

// ParsePart parses "{x=787,m=2655,a=1222,s=2876}". A dimension may appear once.
func ParsePart(line string) (partition.Part, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "{") || !strings.HasSuffix(line, "}") || len(line) < 2 {
		return nil, fmt.Errorf("%w: want {dim=value,...}, got %q", ErrSyntax, line)
	}
	body := line[1 : len(line)-1]
	if body == "" {
		return nil, fmt.Errorf("%w: empty part", ErrSyntax)
	}

	part := make(partition.Part)
	for _, kv := range strings.Split(body, ",") {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !isIdent(k) {
			return nil, fmt.Errorf("%w: bad rating %q", ErrSyntax, kv)
		}
		dim := partition.Dimension(k)
		if _, dup := part[dim]; dup {
			return nil, fmt.Errorf("%w: rating %q given twice", ErrSyntax, k)
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: rating %q: %v", ErrSyntax, kv, err)
		}
		part[dim] = n
	}

	return part, nil
}

// canonical maps the long terminal spellings to Accept and Reject.
func canonical(dest string) string {
	switch dest {
	case "Accept":
		return Accept
	case "Reject":
		return Reject
	default:
		return dest
	}
}

// isIdent reports whether s is a non-empty run of ASCII letters, digits or '_'.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		default:
			return false
		}
	}

	return true
}
