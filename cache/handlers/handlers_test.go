package handlers

import (
	"testing"

	"github.com/finchwire/gatecore/busmsg"
	"github.com/finchwire/gatecore/cache"
	"github.com/finchwire/gatecore/discord"
	"github.com/finchwire/gatecore/gateway"
)

func TestRegistryCoversClosedCatalog(t *testing.T) {
	for _, name := range gateway.KnownEventNames() {
		if _, ok := gateway.Lookup(name); !ok {
			t.Fatalf("event %s has no registry entry", name)
		}
	}
}

func TestGuildCreateThenUnavailableDeleteMovesGuild(t *testing.T) {
	prev := cache.Empty()

	b := cache.From(prev)
	handleGuildCreate(b, &gateway.GuildCreatePayload{ID: 1, Name: "g"})
	curr := b.Finalize()

	if _, ok := curr.Guild(1); !ok {
		t.Fatal("expected guild 1 to be available after GUILD_CREATE")
	}

	prev2 := curr
	b2 := cache.From(prev2)
	handleGuildDelete(b2, &gateway.GuildDeletePayload{ID: 1, Unavailable: true})
	curr2 := b2.Finalize()

	if _, ok := curr2.Guild(1); ok {
		t.Fatal("expected guild 1 to no longer be available")
	}
	if _, ok := curr2.UnavailableGuild(1); !ok {
		t.Fatal("expected guild 1 to be recorded as unavailable")
	}

	msg, ok := factoryGuildDeleted(&gateway.GuildDeletePayload{ID: 1, Unavailable: true}, prev2, curr2)
	if !ok {
		t.Fatal("expected GUILD_DELETE to always publish")
	}
	deleted := msg.(busmsg.GuildDeleted)
	if !deleted.Unavailable || deleted.GuildID != 1 {
		t.Fatalf("unexpected GuildDeleted message: %+v", deleted)
	}
}

func TestMessageUpdatePreservesUntouchedFields(t *testing.T) {
	b := cache.From(cache.Empty())
	handleMessageCreate(b, &discord.Message{
		ID: 10, ChannelID: 5, Content: "original", Pinned: false,
		Author: discord.User{ID: 1, Username: "alice"},
	})
	prev := b.Finalize()

	update := &gateway.MessageUpdatePayload{ID: 10, ChannelID: 5}
	content := "edited"
	update.Content = &content

	b2 := cache.From(prev)
	handleMessageUpdate(b2, update)
	curr := b2.Finalize()

	got, ok := curr.Message(5, 10)
	if !ok {
		t.Fatal("expected message 10 to still be cached")
	}
	if got.Content != "edited" {
		t.Fatalf("expected content to be updated, got %q", got.Content)
	}
	if got.Author.Username != "alice" {
		t.Fatalf("expected author to be preserved untouched, got %+v", got.Author)
	}
	if got.Pinned {
		t.Fatal("expected pinned to be preserved untouched (false)")
	}

	msg, ok := factoryMessageUpdated(update, prev, curr)
	if !ok {
		t.Fatal("expected MESSAGE_UPDATE to publish once the message is cached")
	}
	if msg.(busmsg.MessageUpdated).Message.Content != "edited" {
		t.Fatal("expected published message to reflect the merge")
	}
}

func TestMessageUpdateOnUncachedMessageDoesNotPublish(t *testing.T) {
	prev := cache.Empty()
	b := cache.From(prev)
	content := "edited"
	update := &gateway.MessageUpdatePayload{ID: 99, ChannelID: 5, Content: &content}
	handleMessageUpdate(b, update)
	curr := b.Finalize()

	if _, ok := factoryMessageUpdated(update, prev, curr); ok {
		t.Fatal("expected no message when the update targets an uncached message")
	}
}

func TestChannelDeleteVisibleViaPrevNotCurr(t *testing.T) {
	b := cache.From(cache.Empty())
	handleGuildCreate(b, &gateway.GuildCreatePayload{ID: 1, Name: "g"})
	handleChannelCreate(b, &gateway.ChannelCreatePayload{ID: 5, GuildID: 1, Name: "general", Type: discord.GuildText})
	prev := b.Finalize()

	if _, ok := prev.GuildChannel(5); !ok {
		t.Fatal("expected channel 5 to exist in prev")
	}

	b2 := cache.From(prev)
	deletePayload := &gateway.ChannelDeletePayload{ID: 5, GuildID: 1, Type: discord.GuildText}
	handleChannelDelete(b2, deletePayload)
	curr := b2.Finalize()

	if _, ok := curr.GuildChannel(5); ok {
		t.Fatal("expected channel 5 to be gone from curr")
	}

	msg, ok := factoryChannelDeleted(deletePayload, prev, curr)
	if !ok {
		t.Fatal("expected CHANNEL_DELETE to publish when the channel was previously cached")
	}
	deleted := msg.(busmsg.ChannelDeleted)
	if deleted.Channel.ID != 5 || deleted.Channel.Name != "general" {
		t.Fatalf("expected the deleted channel's last-known shape from prev, got %+v", deleted.Channel)
	}
	if _, ok := deleted.Curr.GuildChannel(5); ok {
		t.Fatal("expected Curr on the message to confirm the channel is gone")
	}
}

func TestChannelDeleteUnknownChannelDoesNotPublish(t *testing.T) {
	prev := cache.Empty()
	b := cache.From(prev)
	payload := &gateway.ChannelDeletePayload{ID: 404}
	handleChannelDelete(b, payload)
	curr := b.Finalize()

	if _, ok := factoryChannelDeleted(payload, prev, curr); ok {
		t.Fatal("expected no message for a channel that was never cached")
	}
}

func TestGuildMemberAddThenUpdatePreservesUserAcrossNickChange(t *testing.T) {
	b := cache.From(cache.Empty())
	handleGuildCreate(b, &gateway.GuildCreatePayload{ID: 1, Name: "g"})
	handleGuildMemberAdd(b, &gateway.GuildMemberAddPayload{
		GuildID:   1,
		RawMember: gateway.RawMember{User: discord.User{ID: 2, Username: "bob"}},
	})
	prev := b.Finalize()

	b2 := cache.From(prev)
	handleGuildMemberUpdate(b2, &gateway.GuildMemberUpdatePayload{
		GuildID: 1,
		User:    discord.User{ID: 2, Username: "bob"},
		Nick:    "bobby",
		Roles:   []discord.RoleID{9},
	})
	curr := b2.Finalize()

	member, user, ok := curr.Member(1, 2)
	if !ok {
		t.Fatal("expected member 2 to still be cached")
	}
	if member.Nick != "bobby" || len(member.Roles) != 1 || member.Roles[0] != 9 {
		t.Fatalf("expected updated nick/roles, got %+v", member)
	}
	if user.Username != "bob" {
		t.Fatalf("expected embedded user to be refreshed, got %+v", user)
	}
}
