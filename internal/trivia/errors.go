package trivia

import "fmt"

// TransportError reports a failed request to the trivia service: a non-2xx
// response or a network-level failure. The message comes from the response
// body's error field when one is present, otherwise it is synthesized from
// the status.
type TransportError struct {
	Status  int // 0 when the request never produced a response
	Message string
}

func (e *TransportError) Error() string {
	return e.Message
}

// MalformedResponseError reports a 2xx response whose body failed shape
// validation: not a question payload, a missing or empty option, or a
// correct-answer value outside the four labels. It is distinct from
// TransportError so callers can tell a broken service from an unreachable
// one, though the chat surface shows both the same way.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed trivia response: %s", e.Reason)
}
