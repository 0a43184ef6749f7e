package stats

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"ahudio-admin-server/internal/vapi"
)

// Call types counted per channel
const (
	CallTypeInbound  = "inboundPhoneCall"
	CallTypeOutbound = "outboundPhoneCall"
	CallTypeWeb      = "webCall"
)

const (
	statusEnded      = "ended"
	statusInProgress = "in-progress"
)

var errNullRecord = errors.New("call record is null")

// Record is a decoded call with its timestamps parsed
type Record struct {
	vapi.Call
	Created *time.Time
	Ended   *time.Time // endedAt, falling back to updatedAt
}

// ParseResult is one element of ParseCalls. Exactly one of Record and Err is set.
type ParseResult struct {
	Index  int
	Record *Record
	Err    error
}

// ParseCalls lazily decodes raw call records. A record that cannot be decoded is
// yielded with Err set so that callers can count it and carry on.
func ParseCalls(raw []json.RawMessage) iter.Seq[ParseResult] {
	return func(yield func(ParseResult) bool) {
		for i, item := range raw {
			if !yield(parseRecord(i, item)) {
				return
			}
		}
	}
}

func parseRecord(index int, item json.RawMessage) ParseResult {
	trimmed := bytes.TrimSpace(item)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ParseResult{Index: index, Err: errNullRecord}
	}

	var call vapi.Call
	if err := json.Unmarshal(trimmed, &call); err != nil {
		return ParseResult{Index: index, Err: fmt.Errorf("failed to decode call record %d: %w", index, err)}
	}

	ended := vapi.ParseTimestamp(call.EndedAt)
	if ended == nil && (call.EndedAt == nil || *call.EndedAt == "") {
		ended = vapi.ParseTimestamp(call.UpdatedAt)
	}

	return ParseResult{
		Index: index,
		Record: &Record{
			Call:    call,
			Created: vapi.ParseTimestamp(call.CreatedAt),
			Ended:   ended,
		},
	}
}

func hasErrorReason(r *Record) bool {
	return r.EndedReason != nil && *r.EndedReason != "" &&
		strings.Contains(strings.ToLower(*r.EndedReason), "error")
}

// Successful reports an ended call whose end reason does not mention an error
func (r *Record) Successful() bool {
	return r.Status == statusEnded && !hasErrorReason(r)
}

// Failed reports a call whose end reason mentions an error. A call can be neither
// successful nor failed.
func (r *Record) Failed() bool {
	return hasErrorReason(r)
}

// Active reports a call that is still in progress
func (r *Record) Active() bool {
	return r.Status == statusInProgress
}

// DurationSeconds returns end minus creation in whole seconds when both are known and positive
func (r *Record) DurationSeconds() (int, bool) {
	if r.Created == nil || r.Ended == nil {
		return 0, false
	}
	d := int(r.Ended.Sub(*r.Created).Seconds())
	if d <= 0 {
		return 0, false
	}
	return d, true
}

// CustomerPhone returns the masked customer number
func (r *Record) CustomerPhone() *string {
	if r.Customer == nil || r.Customer.Number == nil {
		return nil
	}
	return MaskPhoneNumber(*r.Customer.Number)
}

// Sentiment reads analysis.sentiment, falling back to analysis.successEvaluation
func (r *Record) Sentiment() *string {
	if r.Analysis == nil {
		return nil
	}
	value, ok := r.Analysis["sentiment"]
	if !ok {
		value = r.Analysis["successEvaluation"]
	}
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return &v
	default:
		s := fmt.Sprint(v)
		return &s
	}
}
