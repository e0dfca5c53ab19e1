package pipeline

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure so callers can distinguish the failing
// stage without parsing message text.
type Kind string

const (
	KindDownload          Kind = "DOWNLOAD"
	KindTranscription     Kind = "TRANSCRIPTION"
	KindAI                Kind = "AI"
	KindMalformedResponse Kind = "MALFORMED_RESPONSE"
	KindConfiguration     Kind = "CONFIGURATION"
)

var AllKinds = []Kind{
	KindDownload,
	KindTranscription,
	KindAI,
	KindMalformedResponse,
	KindConfiguration,
}

func (k Kind) IsValid() bool {
	for _, v := range AllKinds {
		if k == v {
			return true
		}
	}
	return false
}

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the failure kind carried by err, or the empty Kind when the
// error did not originate in the pipeline.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
