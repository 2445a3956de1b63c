package roster

import "github.com/pawboard/pawboard/internal/daycare"

// Adjacent names the neighbors of a dog in roster order. An empty field
// means there is no neighbor on that side.
type Adjacent struct {
	Prev string
	Next string
}

// ResolveAdjacent computes the previous and next chip numbers around
// chipNumber in the roster's order. A chip that is not in the roster
// yields no neighbors at all. Callers must recompute against the current
// roster on every change; adjacency from a stale snapshot is wrong.
func ResolveAdjacent(dogs []daycare.Dog, chipNumber string) Adjacent {
	idx := indexOf(dogs, chipNumber)
	if idx < 0 {
		return Adjacent{}
	}

	var adj Adjacent
	if idx > 0 {
		adj.Prev = dogs[idx-1].ChipNumber
	}
	if idx < len(dogs)-1 {
		adj.Next = dogs[idx+1].ChipNumber
	}
	return adj
}

// Find returns the dog with the given chip number, first match wins.
func Find(dogs []daycare.Dog, chipNumber string) (daycare.Dog, bool) {
	idx := indexOf(dogs, chipNumber)
	if idx < 0 {
		return daycare.Dog{}, false
	}
	return dogs[idx], true
}

func indexOf(dogs []daycare.Dog, chipNumber string) int {
	if chipNumber == "" {
		return -1
	}
	for i, dog := range dogs {
		if dog.ChipNumber == chipNumber {
			return i
		}
	}
	return -1
}
