package search

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when no acceptable candidate exists.
	ErrNotFound = errors.New("not found")
	// ErrVersionMismatch is returned when candidates exist but none matches
	// the requested major version.
	ErrVersionMismatch = errors.New("version mismatch")
)

// VersionMismatchError lists the versions that were available when a
// constrained selection failed.
type VersionMismatchError struct {
	Target    int
	Available []string
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("no candidate matches version %d (available: %s)", e.Target, strings.Join(e.Available, ", "))
}

func (e *VersionMismatchError) Is(target error) bool {
	return target == ErrVersionMismatch
}

// Candidate is a Match together with the version key it was assigned.
type Candidate struct {
	Match
	Version Key
}

// Select picks one candidate. With target > 0 the first candidate in discovery
// order whose major version equals target wins. Otherwise the greatest key
// wins, ties going to the candidate discovered first.
func Select(candidates []Candidate, target int) (Candidate, error) {
	if len(candidates) == 0 {
		return Candidate{}, ErrNotFound
	}
	if target > 0 {
		var available []string
		seen := map[string]bool{}
		for _, c := range candidates {
			if major, ok := c.Version.Major(); ok && major == target {
				return c, nil
			}
			label := majorLabel(c.Version)
			if !seen[label] {
				seen[label] = true
				available = append(available, label)
			}
		}
		return Candidate{}, &VersionMismatchError{Target: target, Available: available}
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Version.Compare(best.Version) > 0 {
			best = c
		}
	}
	return best, nil
}

func majorLabel(k Key) string {
	if k.IsSentinel() {
		return k.String()
	}
	if major, ok := k.Major(); ok {
		return fmt.Sprint(major)
	}
	return "unknown"
}
