package ipfsdeploy

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// PinnedResult maps pinning service names to the content identifier each
// returned. Services that failed or were not attempted have no entry.
type PinnedResult map[string]string

// InconsistentPinsError reports pinning services that disagree on the
// content identifier of the same directory.
type InconsistentPinsError struct {
	// Reference is the service whose identifier the others were compared to.
	Reference string
	// Pinned holds every identifier that was collected.
	Pinned PinnedResult
}

func (e *InconsistentPinsError) Error() string {
	names := slices.Sorted(maps.Keys(e.Pinned))
	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+"="+e.Pinned[name])
	}
	return fmt.Sprintf("%v: %s", ErrInconsistentPins, strings.Join(pairs, ", "))
}

// Is makes errors.Is(err, ErrInconsistentPins) match.
func (e *InconsistentPinsError) Is(target error) bool {
	return target == ErrInconsistentPins
}

// Reconcile returns the content identifier all successful pinners agree on.
//
// succeeded lists the services that pinned successfully, in the order they
// were attempted; the first one's identifier is the reference. Any
// disagreement fails the whole deployment, however many services agree.
func Reconcile(succeeded []string, pinned PinnedResult) (string, error) {
	if len(succeeded) == 0 {
		return "", ErrNoPins
	}

	reference, ok := pinned[succeeded[0]]
	if !ok || reference == "" {
		return "", fmt.Errorf("%w: %s reported success without a hash", ErrNoPins, succeeded[0])
	}

	for _, cid := range pinned {
		if cid != reference {
			return "", &InconsistentPinsError{
				Reference: succeeded[0],
				Pinned:    maps.Clone(pinned),
			}
		}
	}

	return reference, nil
}
