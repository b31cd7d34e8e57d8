package discord

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSnowflake(t *testing.T) {
	expect := time.Date(2016, 04, 30, 11, 18, 25, 796*int(time.Millisecond), time.UTC)

	t.Run("time", func(t *testing.T) {
		s := Snowflake(value)
		if ts := s.Time(); !ts.Equal(expect) {
			t.Fatalf("unexpected time: want %v, got %v", expect, ts)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		s := Snowflake(value)

		b, err := json.Marshal(s)
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != `"175928847299117063"` {
			t.Fatalf("unexpected encoding: %s", b)
		}

		var got Snowflake
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatal(err)
		}
		if got != s {
			t.Fatalf("round trip mismatch: want %d, got %d", s, got)
		}
	})

	t.Run("IsValid", func(t *testing.T) {
		if Snowflake(0).IsValid() {
			t.Fatal("zero snowflake should be invalid")
		}
		if !Snowflake(1).IsValid() {
			t.Fatal("non-zero snowflake should be valid")
		}
	})
}

func TestTypedIDsMarshalLikeSnowflake(t *testing.T) {
	g := GuildID(value)
	b, err := json.Marshal(g)
	if err != nil {
		t.Fatal(err)
	}

	var s Snowflake
	if err := json.Unmarshal(b, &s); err != nil {
		t.Fatal(err)
	}
	if Snowflake(g) != s {
		t.Fatalf("GuildID and Snowflake encodings diverged: %d != %d", g, s)
	}
}

const value = 175928847299117063
