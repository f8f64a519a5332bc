package validator

import (
	"bytes"
	"encoding/json"

	"github.com/samber/lo"
)

// Report collects validation messages per field.
//
// Fields keep the order in which they were first merged and a field never holds
// the same message twice. A zero Report is not usable, use NewReport.
type Report struct {
	fields   []string
	messages map[string][]string
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{messages: make(map[string][]string)}
}

// Merge adds message under field unless the field already holds it.
func (r *Report) Merge(field, message string) {
	list, ok := r.messages[field]
	if !ok {
		r.fields = append(r.fields, field)
		r.messages[field] = []string{message}
		return
	}

	if lo.Contains(list, message) {
		return
	}

	r.messages[field] = append(list, message)
}

// MergeReport merges every message of other, keeping other's order.
func (r *Report) MergeReport(other *Report) {
	if other == nil {
		return
	}

	for _, field := range other.fields {
		for _, msg := range other.messages[field] {
			r.Merge(field, msg)
		}
	}
}

// IsEmpty reports whether no message was merged.
func (r *Report) IsEmpty() bool {
	return r == nil || len(r.fields) == 0
}

// Fields returns the field names in merge order.
func (r *Report) Fields() []string {
	if r == nil {
		return nil
	}

	return append([]string(nil), r.fields...)
}

// Messages returns a copy of the messages recorded for field.
func (r *Report) Messages(field string) []string {
	if r == nil {
		return nil
	}

	return append([]string(nil), r.messages[field]...)
}

// Values returns the report as a plain map. Field order is lost.
func (r *Report) Values() map[string][]string {
	out := make(map[string][]string, len(r.Fields()))
	for _, field := range r.Fields() {
		out[field] = r.Messages(field)
	}

	return out
}

// Error implements the error interface.
func (r *Report) Error() string {
	if r.IsEmpty() {
		return "validation error"
	}

	b, err := r.MarshalJSON()
	if err != nil {
		return "validation error"
	}

	return string(b)
}

// MarshalJSON encodes the report as an object whose keys follow merge order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, field := range r.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.messages[field])
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
