package sat

import (
	"crypto/md5"
	"sort"
	"strconv"
	"strings"
)

// stateDB memoizes visited lambda states. States are content-addressed over
// the set of assigned literals: two assignments with the same literals in a
// different order map to the same fingerprint. The value stored with each
// fingerprint is the assignment size at first insertion.
type stateDB struct {
	seen map[string]int
}

func newStateDB() *stateDB {
	return &stateDB{seen: map[string]int{}}
}

func (db *stateDB) size() int {
	return len(db.seen)
}

// save inserts the fingerprint of lits if it is absent and returns true on
// first insertion, false if the state was already visited.
func (db *stateDB) save(lits []Lit) bool {
	fp := fingerprint(lits)
	if _, ok := db.seen[fp]; ok {
		return false
	}
	db.seen[fp] = len(lits)
	return true
}

// fingerprint returns the MD5 digest of the sorted literal sequence joined
// by commas, as a raw byte string. Sorting makes the key depend only on the
// set of literals.
func fingerprint(lits []Lit) string {
	sorted := make([]int, len(lits))
	for i, l := range lits {
		sorted[i] = int(l)
	}
	sort.Ints(sorted)

	var sb strings.Builder
	for i, l := range sorted {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(l))
	}
	sum := md5.Sum([]byte(sb.String()))
	return string(sum[:])
}
