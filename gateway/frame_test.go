package gateway

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestDecodeFrame_UnknownOpcode(t *testing.T) {
	_, err := DecodeFrame([]byte(`{"op":99,"d":null}`))
	if err == nil {
		t.Fatal("expected an error for an unknown opcode")
	}

	var unknown *ErrUnknownOpcode
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *ErrUnknownOpcode, got %T: %v", err, err)
	}
}

func TestDecodeFrame_RequiresSAndTOnlyOnDispatch(t *testing.T) {
	if _, err := DecodeFrame([]byte(`{"op":10,"d":{"heartbeat_interval":45000},"s":1,"t":"HELLO"}`)); err == nil {
		t.Fatal("expected an error when s/t are set on a non-Dispatch frame")
	}

	if _, err := DecodeFrame([]byte(`{"op":0,"d":{},"t":"RESUMED"}`)); err == nil {
		t.Fatal("expected an error when a Dispatch frame is missing s")
	}
}

func TestFrameRoundTrip(t *testing.T) {
	cases := []*Frame{
		{Op: HeartbeatOp, Data: json.RawMessage(`42`)},
		{Op: HelloOp, Data: json.RawMessage(`{"heartbeat_interval":45000}`)},
		{Op: DispatchOp, Data: json.RawMessage(`{"content":"hi"}`), Sequence: 7, EventName: MessageCreateEventName},
	}

	for _, want := range cases {
		raw, err := EncodeFrame(want)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}

		got, err := DecodeFrame(raw)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}

		if got.Op != want.Op || got.Sequence != want.Sequence || got.EventName != want.EventName {
			t.Fatalf("round trip mismatch:\nwant %s\ngot  %s", spew.Sdump(want), spew.Sdump(got))
		}
		if string(got.Data) != string(want.Data) {
			t.Fatalf("data mismatch: want %s, got %s", want.Data, got.Data)
		}
	}
}

func TestEncodeFrame_OmitsSAndTForNonDispatch(t *testing.T) {
	raw, err := EncodeFrame(&Frame{Op: HeartbeatOp, Data: json.RawMessage(`7`)})
	if err != nil {
		t.Fatal(err)
	}

	var w wireFrame
	if err := json.Unmarshal(raw, &w); err != nil {
		t.Fatal(err)
	}
	if w.S != nil || w.T != nil {
		t.Fatalf("non-dispatch frame should omit s/t, got s=%v t=%v", w.S, w.T)
	}
}

func TestEncodeHeartbeat(t *testing.T) {
	raw, err := EncodeHeartbeat(nil)
	if err != nil {
		t.Fatal(err)
	}
	f, err := DecodeFrame(raw)
	if err != nil {
		t.Fatal(err)
	}
	if string(f.Data) != "null" {
		t.Fatalf("expected null heartbeat data, got %s", f.Data)
	}

	seq := int64(42)
	raw, err = EncodeHeartbeat(&seq)
	if err != nil {
		t.Fatal(err)
	}
	f, err = DecodeFrame(raw)
	if err != nil {
		t.Fatal(err)
	}
	if string(f.Data) != "42" {
		t.Fatalf("expected 42, got %s", f.Data)
	}
}
