// Package rules implements the SURVIVE/SPAWN/STATES/NEIGHBORHOOD rule
// grammar for Life-like automata and the predicates derived from it.
package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Neighborhood selects which offset set counts as adjacent.
type Neighborhood uint8

const (
	// Moore counts all 26 surrounding cells.
	Moore Neighborhood = iota
	// VonNeumann counts the 6 face-adjacent cells.
	VonNeumann
)

// ParseNeighborhood maps "VN"/"vn" to VonNeumann and anything else to Moore.
func ParseNeighborhood(s string) Neighborhood {
	switch s {
	case "VN", "vn":
		return VonNeumann
	default:
		return Moore
	}
}

// String returns the neighborhood's display name.
func (n Neighborhood) String() string {
	if n == VonNeumann {
		return "Von Neumann"
	}
	return "Moore"
}

// Span is an inclusive neighbor-count interval.
type Span struct {
	Lo, Hi int
}

// Contains reports whether n lies inside the span.
func (s Span) Contains(n int) bool { return n >= s.Lo && n <= s.Hi }

// Rules holds a parsed rule set. Treat values as immutable once built.
type Rules struct {
	Survive      []Span
	Spawn        []Span
	ExtraLife    int
	Neighborhood Neighborhood
}

// Default returns the fallback rule set used when parsing user input
// fails: survive on 5-10 neighbors, spawn on exactly 8, five extra life
// ticks, Moore neighborhood.
func Default() Rules {
	return Rules{
		Survive:      []Span{{Lo: 5, Hi: 10}},
		Spawn:        []Span{{Lo: 8, Hi: 8}},
		ExtraLife:    5,
		Neighborhood: Moore,
	}
}

// Parse builds a rule set from the SURVIVE/SPAWN/STATES/NEIGHBORHOOD
// grammar, e.g. "6-8/7/4/M". SURVIVE and SPAWN are comma-separated
// integers or a-b ranges; malformed tokens are dropped and the remaining
// valid subset is used. STATES must be an integer greater than one; the
// two baseline states (occupied, empty) are implicit, so the extra life
// granted to a spawned cell is STATES minus two.
func Parse(input string) (Rules, error) {
	fields := strings.Split(input, "/")
	if len(fields) < 4 {
		return Rules{}, errors.Errorf("rules %q: want 4 fields separated by '/', got %d", input, len(fields))
	}
	states, err := strconv.Atoi(fields[2])
	if err != nil {
		return Rules{}, errors.Wrapf(err, "rules %q: parsing state count", input)
	}
	if states <= 1 {
		return Rules{}, errors.Errorf("rules %q: need at least 2 states, got %d", input, states)
	}
	return Rules{
		Survive:      parseSpans(fields[0]),
		Spawn:        parseSpans(fields[1]),
		ExtraLife:    states - 2,
		Neighborhood: ParseNeighborhood(fields[3]),
	}, nil
}

// parseSpans parses a comma-separated list of integers and a-b ranges.
// Tokens that fail to parse are skipped.
func parseSpans(field string) []Span {
	var spans []Span
	for _, token := range strings.Split(field, ",") {
		parts := strings.Split(token, "-")
		if len(parts) == 1 {
			a, err := strconv.Atoi(token)
			if err != nil {
				continue
			}
			spans = append(spans, Span{Lo: a, Hi: a})
			continue
		}
		a, errA := strconv.Atoi(parts[0])
		b, errB := strconv.Atoi(parts[1])
		if errA != nil || errB != nil {
			continue
		}
		spans = append(spans, Span{Lo: a, Hi: b})
	}
	return spans
}

// CheckDespawn reports whether a cell with n occupied neighbors comes
// under despawn consideration, i.e. n lies outside every survive span.
func (r Rules) CheckDespawn(n int) bool {
	for _, s := range r.Survive {
		if s.Contains(n) {
			return false
		}
	}
	return true
}

// CheckSpawn reports whether an empty cell with n occupied neighbors is
// eligible to spawn, i.e. n lies inside at least one spawn span.
func (r Rules) CheckSpawn(n int) bool {
	for _, s := range r.Spawn {
		if s.Contains(n) {
			return true
		}
	}
	return false
}

// String renders a human-readable rule summary.
func (r Rules) String() string {
	var b strings.Builder
	b.WriteString("Survival:")
	for _, s := range r.Survive {
		fmt.Fprintf(&b, " %d-%d", s.Lo, s.Hi)
	}
	b.WriteString("\nSpawn:")
	for _, s := range r.Spawn {
		fmt.Fprintf(&b, " %d-%d", s.Lo, s.Hi)
	}
	fmt.Fprintf(&b, "\nExtra life: %d", r.ExtraLife)
	fmt.Fprintf(&b, "\nNeighborhood: %s", r.Neighborhood)
	return b.String()
}
