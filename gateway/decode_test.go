package gateway

import (
	"errors"
	"testing"
)

func TestDecodePayload_UnknownEvent(t *testing.T) {
	_, err := DecodePayload("USER_SETTINGS_UPDATE", []byte(`{}`))
	if err == nil {
		t.Fatal("expected an error for an unregistered event name")
	}

	var unknown *ErrUnknownEvent
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *ErrUnknownEvent, got %T: %v", err, err)
	}
}

func TestDecodePayload_MessageCreate(t *testing.T) {
	payload, err := DecodePayload(MessageCreateEventName, []byte(`{
		"id": "1", "channel_id": "2", "content": "hello"
	}`))
	if err != nil {
		t.Fatal(err)
	}

	msg, ok := payload.(*MessageCreatePayload)
	if !ok {
		t.Fatalf("expected *MessageCreatePayload, got %T", payload)
	}
	if msg.Content != "hello" {
		t.Fatalf("expected content %q, got %q", "hello", msg.Content)
	}
}

func TestMessageUpdatePayload_PartialFields(t *testing.T) {
	var payload MessageUpdatePayload
	err := payload.UnmarshalJSON([]byte(`{"id":"1","channel_id":"2","content":"edited"}`))
	if err != nil {
		t.Fatal(err)
	}

	if payload.Content == nil || *payload.Content != "edited" {
		t.Fatalf("expected content to be set to %q", "edited")
	}
	if payload.Pinned != nil {
		t.Fatal("expected pinned to be absent")
	}
	if payload.Author != nil {
		t.Fatal("expected author to be absent")
	}
}
