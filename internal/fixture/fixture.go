/*
Package fixture generates test-only identifiers and typed literals: random
field-name suffixes, fixed(16)/uuid byte fixtures, and ULID-shaped
schema-id strings for the serialization round-trip tests.

Adapted from the teacher's internal/uid (Crockford base-32 UID/ULID
generators); its hand-rolled v4 UUID construction is dropped in favor of
calling google/uuid directly, since the schema core already depends on it
for Literal.UUID.
*/
package fixture

import (
	"crypto/rand"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	schema "github.com/icebergcore/schema"
)

// Crockford base-32 alphabet (excludes I, L, O, U). The last character is
// repeated so a random byte of 0xFF still maps inside bounds.
const letters = "0123456789ABCDEFGHJKMNPQRSTVWXYZZ"

const lettersLen = len(letters) - 1 // 32

// RandomName returns a crypto-random Crockford base-32 string of the given
// length, suitable as a test field name before SanitizeColumnNames is run
// (callers that need a name requiring escaping should graft punctuation on
// afterward; this alphabet alone never needs sanitizing).
func RandomName(size int) string {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		panic("fixture: crypto/rand read failed: " + err.Error())
	}
	out := make([]byte, size)
	for i := 0; i < size; i++ {
		idx := int(math.Floor(float64(buf[i]) / 0xff * float64(lettersLen)))
		out[i] = letters[idx]
	}
	return string(out)
}

// RandomFixedBytes returns length crypto-random bytes, for building
// fixed(length) literal fixtures.
func RandomFixedBytes(length int) []byte {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		panic("fixture: crypto/rand read failed: " + err.Error())
	}
	return buf
}

// RandomUUIDLiteral returns a fresh uuid-typed Literal, for uuid primitive
// and fixed(16)->uuid promotion fixtures.
func RandomUUIDLiteral() schema.Literal {
	lit, err := schema.UUIDLiteral(uuid.New().String())
	if err != nil {
		panic("fixture: unreachable, uuid.New() always produces a valid UUID: " + err.Error())
	}
	return lit
}

// ULID is a Universal Unique Lexicographically Sortable Identifier.
// https://github.com/ulid/spec
type ULID struct {
	when time.Time
}

const (
	timeLen   = 10
	randomLen = 16
)

// NewULID creates a ULID for the current time.
func NewULID() *ULID { return &ULID{when: time.Now()} }

// NewULIDAt creates a ULID for the given time.
func NewULIDAt(t time.Time) *ULID { return &ULID{when: t} }

// String encodes the ULID as a 26-character string.
func (u *ULID) String() string {
	return u.encodeTime() + u.encodeRandom()
}

func (u *ULID) encodeTime() string {
	ms := u.when.UnixMilli()
	b := make([]byte, timeLen)
	for i := timeLen - 1; i >= 0; i-- {
		b[i] = letters[ms%int64(lettersLen)]
		ms /= int64(lettersLen)
	}
	return string(b)
}

func (u *ULID) encodeRandom() string {
	buf := make([]byte, randomLen)
	if _, err := rand.Read(buf); err != nil {
		panic("fixture: crypto/rand read failed: " + err.Error())
	}
	out := make([]byte, randomLen)
	for i := 0; i < randomLen; i++ {
		idx := int(math.Floor(float64(buf[i]) / 0xff * float64(lettersLen)))
		out[i] = letters[idx]
	}
	return string(out)
}

// DecodeULIDTime extracts the millisecond timestamp from a ULID string.
func DecodeULIDTime(s string) (int64, error) {
	if len(s) != timeLen+randomLen {
		return 0, fmt.Errorf("fixture: invalid ULID length %d", len(s))
	}
	var ms int64
	for _, c := range []byte(s[:timeLen]) {
		idx := strings.IndexByte(letters, c)
		if idx < 0 {
			return 0, fmt.Errorf("fixture: invalid ULID char %q", c)
		}
		ms = ms*int64(lettersLen) + int64(idx)
	}
	return ms, nil
}

// SchemaIDFixture returns a ULID-shaped string, for tests that want a
// distinctive, sortable, human-legible schema identifier.
func SchemaIDFixture() string {
	return NewULID().String()
}
