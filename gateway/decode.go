package gateway

import "encoding/json"

// ErrUnknownEvent is a recoverable decode error (§7 kind 1): the dispatch
// frame is well-formed but names an event outside the closed catalog.
type ErrUnknownEvent struct {
	Name EventName
}

func (e *ErrUnknownEvent) Error() string {
	return "unknown dispatch event: " + string(e.Name)
}

// DecodePayload decodes a dispatch frame's data according to its event
// name. It returns *ErrUnknownEvent for names outside the registry; callers
// log and drop the frame rather than treat this as fatal.
func DecodePayload(name EventName, data json.RawMessage) (interface{}, error) {
	newPayload, ok := decoders[name]
	if !ok {
		return nil, &ErrUnknownEvent{Name: name}
	}

	payload := newPayload()
	if err := json.Unmarshal(data, payload); err != nil {
		return nil, err
	}

	return payload, nil
}
