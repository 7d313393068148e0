package request

import (
	"fmt"
	"strconv"
	"strings"
)

// NextRootID mints the next identifier for a root or version slot.
// Root and version identifiers draw from one shared sequence, so the
// next value must exceed the maximum of both. An empty dataset starts
// at 1.
func NextRootID(maxRootID, maxVersionID uint) uint {
	if maxVersionID > maxRootID {
		return maxVersionID + 1
	}
	return maxRootID + 1
}

// NumberPrefix extracts the numeric prefix of a request number. The
// stored format is <prefix><yy> with a fixed two-digit year suffix and
// no separator; legacy numbers may carry a /suffix part which is
// ignored.
func NumberPrefix(number string) (int, error) {
	base := number
	if i := strings.IndexByte(base, '/'); i >= 0 {
		base = base[:i]
	}
	if len(base) <= 2 {
		return 0, fmt.Errorf("request number %q is too short", number)
	}
	prefix, err := strconv.Atoi(base[:len(base)-2])
	if err != nil {
		return 0, fmt.Errorf("request number %q has a non-numeric prefix", number)
	}
	return prefix, nil
}

// NextNumber computes the next human-facing request number: the
// maximum prefix across all existing numbers plus one, suffixed with
// the last two digits of year. An empty dataset yields "1<yy>".
// Unparseable numbers are skipped rather than failing the mint.
func NextNumber(numbers []string, year int) string {
	maxPrefix := 0
	for _, n := range numbers {
		prefix, err := NumberPrefix(n)
		if err != nil {
			continue
		}
		if prefix > maxPrefix {
			maxPrefix = prefix
		}
	}
	return fmt.Sprintf("%d%02d", maxPrefix+1, year%100)
}
