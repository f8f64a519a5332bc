package instrument

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// Payload is a captured request or response body to be logged.
//
// The log handler installed by this package decodes a complete JSON payload and
// masks the configured keys. Anything else, including a truncated payload or
// a Payload logged through another handler, is reduced to its size so secrets
// in an unparsable body never reach the output.
type Payload struct {
	Data      []byte
	Truncated bool
}

// LogValue implements slog.LogValuer with the size-only form.
func (p Payload) LogValue() slog.Value {
	return slog.StringValue(p.summary())
}

func (p Payload) summary() string {
	if p.Truncated {
		return fmt.Sprintf("<truncated body, over %d bytes>", len(p.Data))
	}
	return fmt.Sprintf("<unparsed body, %d bytes>", len(p.Data))
}

// reveal returns the decoded and masked body when that is safe, or the summary.
func (p Payload) reveal(mask func(any) any) any {
	if p.Truncated || len(p.Data) == 0 {
		return p.summary()
	}

	var decoded any
	if err := json.Unmarshal(p.Data, &decoded); err != nil {
		return p.summary()
	}

	switch decoded.(type) {
	case map[string]any, []any:
		return mask(decoded)
	default:
		return p.summary()
	}
}
