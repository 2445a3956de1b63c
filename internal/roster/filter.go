package roster

import (
	"strings"

	"github.com/pawboard/pawboard/internal/daycare"
)

// StatusLookup resolves the effective status for a dog. The overlay store
// supplies the real implementation; tests pass closures.
type StatusLookup func(daycare.Dog) daycare.Status

// BaseStatus is the lookup used when no overlay is in play.
func BaseStatus(d daycare.Dog) daycare.Status {
	return d.BaseStatus()
}

// Visible returns the subsequence of dogs matching both the settled search
// term and the status filter, in the roster's original order. The input
// slice is never mutated.
func Visible(dogs []daycare.Dog, term string, filter daycare.Status, effective StatusLookup) []daycare.Dog {
	if effective == nil {
		effective = BaseStatus
	}
	needle := strings.ToLower(strings.TrimSpace(term))

	var out []daycare.Dog
	for _, dog := range dogs {
		if !matchesName(dog, needle) {
			continue
		}
		if filter != daycare.StatusAll && effective(dog) != filter {
			continue
		}
		out = append(out, dog)
	}
	return out
}

// matchesName is a case-insensitive substring match against the raw name
// field. A missing name behaves as the empty string, so it matches only
// when the term is empty too.
func matchesName(dog daycare.Dog, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(dog.Name), needle)
}
