package badger

import (
	"fmt"

	"github.com/poiesic/wayfind/core"
)

// Key prefixes for different data types
const (
	candidatePrefix = "canrec"
)

// makeCandidateKey generates a key for a candidate record by intent and ID.
func makeCandidateKey(intent core.Intent, id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s:%d", candidatePrefix, intent, id))
}

// makeIntentPrefix generates the key prefix shared by all candidates of an
// intent, used for partition scans.
func makeIntentPrefix(intent core.Intent) []byte {
	return []byte(fmt.Sprintf("%s:%s:", candidatePrefix, intent))
}
