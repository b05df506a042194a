// Package workflow turns a textual rule system into a partition decision tree.
//
// Input format:
//
//	px{a<2006:qkq,m>2090:A,rfg}
//	in{s<1351:px,qqz}
//	...
//
//	{x=787,m=2655,a=1222,s=2876}
//
// Each workflow tries its rules in order; the first whose comparison holds
// sends the part to its destination, and the trailing entry catches the rest.
// A and R accept and reject. Parts start in DefaultEntry ("in").
//
// Flow:
//
//  1. Parse reads workflows and parts (ErrSyntax, ErrDuplicateWorkflow).
//  2. Validate checks references (ErrUndefinedWorkflow) and runs a three-color
//     DFS over the reference graph (ErrCycle, with the loop in the message).
//  3. Build converts workflows in post-order into partition.Branch chains,
//     sharing each converted workflow between all rules pointing at it.
//
// The partition engine then counts accepted combinations or classifies parts:
//
//	sys, _ := workflow.Parse(text)
//	n, _ := sys.CountAccepted(workflow.DefaultEntry)
package workflow
