package evaluation

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// newRunID returns a lexically sortable identifier for a run or an
// evaluation.
func newRunID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
