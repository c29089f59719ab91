package linear

import "fmt"

// Counterexample names the point in the history where no legal
// linearization could be found: the index of the Ok completion that could
// not be placed, and the invoke indices still pending at that point. Pure
// data; text rendering is a caller concern (spec.md §9's report-rendering
// separation), mirrored by Explain below rather than folded into Search.
type Counterexample struct {
	Index   int
	Pending []int
}

// Explain renders a Counterexample as a single sentence.
func Explain(c Counterexample) string {
	return fmt.Sprintf("no legal linearization found at op %d with pending invocations %v", c.Index, c.Pending)
}
