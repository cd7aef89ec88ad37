// Package explain pre-fills a solution write-up by spotting well-known
// technique keywords in submitted source code. It is a heuristic: a "dp"
// inside an unrelated identifier is enough to select the dynamic
// programming write-up.
package explain

import (
	"fmt"
	"strings"

	"dsa-notes/internal/domain/model"
)

// Bucket names, in evaluation order.
const (
	BucketStack              = "stack"
	BucketDFS                = "dfs"
	BucketDynamicProgramming = "dynamic-programming"
	BucketTwoPointers        = "two-pointers"
	BucketTree               = "tree"
	BucketGeneric            = "generic"
)

type bucket struct {
	name     string
	keywords []string
	build    func(tags []string) model.Explanation
}

// buckets is evaluated top to bottom; the first match wins.
var buckets = []bucket{
	{BucketStack, []string{"stack"}, stackExplanation},
	{BucketDFS, []string{"dfs", "recursive", "recursion"}, dfsExplanation},
	{BucketDynamicProgramming, []string{"dp", "memo"}, dpExplanation},
	{BucketTwoPointers, []string{"left < right", "left<right", "lo < hi", "l < r", "i < j", "two pointer"}, twoPointerExplanation},
	{BucketTree, []string{"treenode", "root"}, treeExplanation},
}

// Synthesize selects exactly one explanation for the given source code.
func Synthesize(code string, tags []string) model.Explanation {
	lower := strings.ToLower(code)
	for _, b := range buckets {
		for _, kw := range b.keywords {
			if strings.Contains(lower, kw) {
				exp := b.build(tags)
				exp.Bucket = b.name
				return exp
			}
		}
	}
	exp := genericExplanation(tags)
	exp.Bucket = BucketGeneric
	return exp
}

func stackExplanation([]string) model.Explanation {
	return model.Explanation{
		Intuition: "Elements are resolved in last-in, first-out order: each new element may settle the pending ones on top of the stack.",
		Approach:  "Scan the input once and keep unresolved elements on a stack, popping whenever the current element resolves the top.",
		Steps: []string{
			"Initialise an empty stack.",
			"For each element, pop while the top is resolved by the current element and record the answer for it.",
			"Push the current element (or its index).",
			"Whatever remains on the stack has no answer; apply the default.",
		},
		TimeComplexity:  "O(n), every element is pushed and popped at most once",
		SpaceComplexity: "O(n) for the stack",
		EdgeCases: []string{
			"Empty input",
			"Strictly increasing or decreasing input",
			"All elements equal",
		},
	}
}

func dfsExplanation([]string) model.Explanation {
	return model.Explanation{
		Intuition: "The answer for a node is assembled from the answers of its neighbours or children, which suggests a depth-first traversal.",
		Approach:  "Recurse from each start point, mark visited states, and combine results on the way back up.",
		Steps: []string{
			"Define the recursive function and what it returns for one state.",
			"Handle the base case (out of bounds, null node or already visited).",
			"Recurse into every neighbour or child.",
			"Combine the child results and return.",
		},
		TimeComplexity:  "O(V + E), each state is expanded once",
		SpaceComplexity: "O(V) for the visited set and recursion stack",
		EdgeCases: []string{
			"Empty graph or single node",
			"Cycles (visited tracking)",
			"Deep recursion on degenerate inputs",
		},
	}
}

func dpExplanation([]string) model.Explanation {
	return model.Explanation{
		Intuition: "The problem has overlapping subproblems with optimal substructure, so each subproblem only needs to be solved once.",
		Approach:  "Define the state, write the transition from smaller states, and fill a table (or memoise a recursion) in dependency order.",
		Steps: []string{
			"Define dp[state] and what it represents.",
			"Initialise the base cases.",
			"Fill the table using the transition relation.",
			"Read the answer from the final state.",
		},
		TimeComplexity:  "O(number of states x transition cost)",
		SpaceComplexity: "O(number of states), often reducible to one row",
		EdgeCases: []string{
			"Empty input",
			"Single element",
			"Large values that overflow 32-bit integers",
		},
	}
}

func twoPointerExplanation([]string) model.Explanation {
	return model.Explanation{
		Intuition: "With ordered data, moving one of two indices can rule out a whole range of candidates at once.",
		Approach:  "Keep two pointers and move the one whose change can improve the current answer.",
		Steps: []string{
			"Place the pointers (both ends, or both at the start for a window).",
			"Evaluate the current pair or window.",
			"Advance the pointer that can improve the result.",
			"Stop when the pointers cross.",
		},
		TimeComplexity:  "O(n), plus O(n log n) if sorting is required",
		SpaceComplexity: "O(1) extra space",
		EdgeCases: []string{
			"Fewer than two elements",
			"Duplicates",
			"No valid pair",
		},
	}
}

func treeExplanation([]string) model.Explanation {
	return model.Explanation{
		Intuition: "Tree problems decompose naturally: the answer at a node depends on the answers of its subtrees.",
		Approach:  "Traverse the tree (recursively or level by level) and carry the needed information between parent and children.",
		Steps: []string{
			"Handle the empty tree.",
			"Pick a traversal order (pre-order, in-order, post-order or level-order).",
			"Compute the per-node value from the children.",
			"Aggregate the global answer.",
		},
		TimeComplexity:  "O(n), every node is visited once",
		SpaceComplexity: "O(h) for the recursion stack, O(n) for a skewed tree",
		EdgeCases: []string{
			"Empty tree",
			"Single node",
			"Completely skewed tree",
		},
	}
}

func genericExplanation(tags []string) model.Explanation {
	intuition := "Identify the core constraint of the problem and pick the data structure that answers it efficiently."
	if len(tags) > 0 {
		intuition = fmt.Sprintf("The problem is built around %s; start from the standard technique for it.", strings.Join(tags, ", "))
	}
	return model.Explanation{
		Intuition: intuition,
		Approach:  "Work through the examples by hand, find the invariant that the solution maintains, then implement it directly.",
		Steps: []string{
			"Parse the input and handle trivial cases.",
			"Apply the main technique.",
			"Return the result.",
		},
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(1)",
		EdgeCases: []string{
			"Empty input",
			"Minimum and maximum constraint values",
		},
	}
}
