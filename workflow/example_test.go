// Package workflow_test provides examples demonstrating the workflow builder.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package workflow_test

import (
	"fmt"

	"github.com/Marlinski/advent-of-code-2023/workflow"
)

// ExampleParse reads the sample rule system, sums the ratings of the accepted
// parts and counts every accepted rating combination in [1,4000]⁴.
func ExampleParse() {
	sys, err := workflow.Parse(exampleSystem)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sum, _ := sys.SumAccepted(workflow.DefaultEntry)
	n, _ := sys.CountAccepted(workflow.DefaultEntry)
	fmt.Println(sum, n)
	// Output: 19114 167409079868000
}

// ExampleSystem_Validate shows the loop reported for a cyclic system.
func ExampleSystem_Validate() {
	sys, _ := workflow.Parse("in{x<5:a,R}\na{m>3:in,A}")
	fmt.Println(sys.Validate(workflow.DefaultEntry))
	// Output: workflow: cyclic reference: in -> a -> in
}
