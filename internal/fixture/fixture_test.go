package fixture

import (
	"testing"
	"time"
)

func TestRandomNameLengthAndAlphabet(t *testing.T) {
	name := RandomName(12)
	if len(name) != 12 {
		t.Fatalf("RandomName(12) length = %d, want 12", len(name))
	}
	for _, c := range name {
		found := false
		for _, l := range letters {
			if c == l {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("RandomName produced char %q outside the Crockford alphabet", c)
		}
	}
}

func TestRandomFixedBytesLength(t *testing.T) {
	b := RandomFixedBytes(16)
	if len(b) != 16 {
		t.Errorf("RandomFixedBytes(16) length = %d, want 16", len(b))
	}
}

func TestRandomUUIDLiteralIsWellFormed(t *testing.T) {
	lit := RandomUUIDLiteral()
	s, ok := lit.JSONValue().(string)
	if !ok || len(s) != 36 {
		t.Errorf("RandomUUIDLiteral().JSONValue() = %v, want a 36-char UUID string", lit.JSONValue())
	}
}

func TestULIDRoundTripsTime(t *testing.T) {
	when := time.UnixMilli(1_700_000_000_000)
	u := NewULIDAt(when)
	s := u.String()
	if len(s) != timeLen+randomLen {
		t.Fatalf("ULID string length = %d, want %d", len(s), timeLen+randomLen)
	}

	ms, err := DecodeULIDTime(s)
	if err != nil {
		t.Fatalf("DecodeULIDTime() error: %v", err)
	}
	if ms != when.UnixMilli() {
		t.Errorf("DecodeULIDTime() = %d, want %d", ms, when.UnixMilli())
	}
}

func TestDecodeULIDTimeRejectsBadInput(t *testing.T) {
	if _, err := DecodeULIDTime("too-short"); err == nil {
		t.Error("expected an error for a too-short ULID string")
	}
	if _, err := DecodeULIDTime("!!!!!!!!!!0000000000000000"); err == nil {
		t.Error("expected an error for a ULID with an invalid character")
	}
}

func TestSchemaIDFixtureIsULIDShaped(t *testing.T) {
	id := SchemaIDFixture()
	if len(id) != timeLen+randomLen {
		t.Errorf("SchemaIDFixture() length = %d, want %d", len(id), timeLen+randomLen)
	}
	if _, err := DecodeULIDTime(id); err != nil {
		t.Errorf("SchemaIDFixture() did not decode as a valid ULID: %v", err)
	}
}
