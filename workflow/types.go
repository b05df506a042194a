// Package workflow defines the rule-system types and sentinel errors of the
// workflow builder.
package workflow

import (
	"errors"
	"strings"

	"github.com/Marlinski/advent-of-code-2023/partition"
)

// DefaultEntry is the workflow every part starts in.
const DefaultEntry = "in"

// Terminal destinations.
const (
	Accept = "A"
	Reject = "R"
)

// Sentinel errors returned by Parse, Validate and Build.
var (
	// ErrSyntax indicates a malformed workflow or part line.
	ErrSyntax = errors.New("workflow: syntax error")

	// ErrDuplicateWorkflow indicates two workflows with the same name.
	ErrDuplicateWorkflow = errors.New("workflow: duplicate workflow name")

	// ErrUndefinedWorkflow indicates a reference to a workflow that does not exist.
	ErrUndefinedWorkflow = errors.New("workflow: undefined workflow")

	// ErrCycle indicates a chain of references that leads back to itself.
	ErrCycle = errors.New("workflow: cyclic reference")
)

// Rule sends a part to Dest when Pred holds.
type Rule struct {
	Pred partition.Predicate
	Dest string
}

// Workflow is a named, ordered list of rules with a final unconditional destination.
type Workflow struct {
	Name    string
	Rules   []Rule
	Default string
}

// String renders w in its textual form, e.g. "px{a<2006:qkq,m>2090:A,rfg}".
func (w *Workflow) String() string {
	var sb strings.Builder
	sb.WriteString(w.Name)
	sb.WriteByte('{')
	for _, r := range w.Rules {
		sb.WriteString(r.Pred.String())
		sb.WriteByte(':')
		sb.WriteString(r.Dest)
		sb.WriteByte(',')
	}
	sb.WriteString(w.Default)
	sb.WriteByte('}')

	return sb.String()
}

// destinations lists every destination of w in rule order, default last.
func (w *Workflow) destinations() []string {
	out := make([]string, 0, len(w.Rules)+1)
	for _, r := range w.Rules {
		out = append(out, r.Dest)
	}

	return append(out, w.Default)
}

// System is a parsed set of workflows plus the parts listed after them.
// Order keeps workflow names in input order for deterministic traversal.
type System struct {
	Workflows map[string]*Workflow
	Order     []string
	Parts     []partition.Part
}

// isTerminal reports whether dest is Accept or Reject.
func isTerminal(dest string) bool {
	return dest == Accept || dest == Reject
}
