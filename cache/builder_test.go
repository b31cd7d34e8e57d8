package cache

import (
	"testing"
	"time"

	"github.com/finchwire/gatecore/discord"
)

func TestSetTypingAndLastTyped(t *testing.T) {
	b := From(Empty())
	now := time.Now()
	b.SetTyping(5, 9, now)
	snap := b.Finalize()

	got, ok := snap.LastTyped(5, 9)
	if !ok || !got.Equal(now) {
		t.Fatalf("expected last typed timestamp %v, got %v ok=%v", now, got, ok)
	}
}

func TestSetVoiceState(t *testing.T) {
	b := From(Empty())
	b.SetVoiceState(1, discord.VoiceState{GuildID: 1, ChannelID: 2, UserID: 3})
	snap := b.Finalize()

	got, ok := snap.VoiceState(1, 3)
	if !ok || got.ChannelID != 2 {
		t.Fatalf("expected cached voice state in channel 2, got %+v ok=%v", got, ok)
	}
}

func TestNewWithCustomMaxMessagesPerChannel(t *testing.T) {
	b := From(New(Options{MaxMessagesPerChannel: 1}))
	b.InsertMessage(discord.Message{ID: 1, ChannelID: 1, Content: "one"})
	b.InsertMessage(discord.Message{ID: 2, ChannelID: 1, Content: "two"})
	snap := b.Finalize()

	msgs, ok := snap.Messages(1)
	if !ok || len(msgs) != 1 {
		t.Fatalf("expected exactly 1 retained message, got %d", len(msgs))
	}
	if msgs[0].ID != 2 {
		t.Fatalf("expected the newest message to survive, got id %d", msgs[0].ID)
	}
}

func TestFromDoesNotAliasSource(t *testing.T) {
	src := Empty()
	b := From(src)
	b.UpsertUser(discord.User{ID: 1, Username: "a"})
	next := b.Finalize()

	if _, ok := src.User(1); ok {
		t.Fatal("mutating the builder leaked back into the source snapshot")
	}
	if _, ok := next.User(1); !ok {
		t.Fatal("expected the finalized snapshot to contain the upserted user")
	}
}

func TestGuildAndUnavailableAreMutuallyExclusive(t *testing.T) {
	b := From(Empty())
	b.InsertUnavailableGuild(10)
	b.UpsertGuild(&discord.Guild{ID: 10, Name: "g"})
	snap := b.Finalize()

	if _, ok := snap.Guild(10); !ok {
		t.Fatal("expected guild 10 to be available")
	}
	if _, ok := snap.UnavailableGuild(10); ok {
		t.Fatal("expected guild 10 to no longer be unavailable")
	}

	b2 := From(snap)
	b2.MarkGuildUnavailable(10)
	snap2 := b2.Finalize()

	if _, ok := snap2.Guild(10); ok {
		t.Fatal("expected guild 10 to be removed from guilds once marked unavailable")
	}
	if _, ok := snap2.UnavailableGuild(10); !ok {
		t.Fatal("expected guild 10 to be unavailable")
	}
}

func TestFinalizeTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic calling Finalize twice")
		}
	}()

	b := From(Empty())
	b.Finalize()
	b.Finalize()
}

func TestMessageRingEvictsOldest(t *testing.T) {
	b := From(Empty())
	b.snap.messages[1] = newMessageRing(2)

	b.InsertMessage(discord.Message{ID: 1, ChannelID: 1, Content: "one"})
	b.InsertMessage(discord.Message{ID: 2, ChannelID: 1, Content: "two"})
	b.InsertMessage(discord.Message{ID: 3, ChannelID: 1, Content: "three"})

	snap := b.Finalize()
	msgs, ok := snap.Messages(1)
	if !ok {
		t.Fatal("expected channel 1 to have a messages entry")
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages after eviction, got %d", len(msgs))
	}
	if _, ok := snap.Message(1, 1); ok {
		t.Fatal("expected the oldest message to have been evicted")
	}
}

func TestRemoveGuildChannelRetainsMessages(t *testing.T) {
	b := From(Empty())
	b.UpsertGuild(&discord.Guild{ID: 1, Name: "g"})
	b.UpsertGuildChannel(discord.Channel{ID: 5, GuildID: 1, Name: "general"})
	b.InsertMessage(discord.Message{ID: 100, ChannelID: 5, Content: "hi"})
	prev := b.Finalize()

	if _, ok := prev.GuildChannel(5); !ok {
		t.Fatal("expected channel 5 to exist before delete")
	}

	b2 := From(prev)
	removed, ok := b2.RemoveChannel(5)
	if !ok || removed.ID != 5 {
		t.Fatalf("expected to remove channel 5, got %+v, ok=%v", removed, ok)
	}
	curr := b2.Finalize()

	if _, ok := curr.GuildChannel(5); ok {
		t.Fatal("expected channel 5 to be gone from curr")
	}
	if _, ok := curr.Message(5, 100); !ok {
		t.Fatal("expected message 100 to still be retrievable from curr's message cache")
	}
	if _, ok := prev.GuildChannel(5); !ok {
		t.Fatal("expected channel 5 to still be observable via prev")
	}
}
