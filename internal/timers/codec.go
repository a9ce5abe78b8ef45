package timers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ytget/timerbox/internal/model"
)

// wireTimer is the canonical persisted form: numbers for duration and
// remaining, a string id.
type wireTimer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Duration  int    `json:"duration"`
	Category  string `json:"category"`
	Status    string `json:"status"`
	Remaining int    `json:"remaining"`
}

// legacyTimer accepts what older writers produced: numeric or string ids and
// numbers that may be quoted.
type legacyTimer struct {
	ID        flexString `json:"id"`
	Name      string     `json:"name"`
	Duration  flexInt    `json:"duration"`
	Category  string     `json:"category"`
	Status    string     `json:"status"`
	Remaining flexInt    `json:"remaining"`
}

// flexInt decodes a JSON number or a string holding an integer
type flexInt struct {
	Value int
	Set   bool
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	text := string(data)
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		text = strings.TrimSpace(s)
	}

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		if n > math.MaxInt32 || n < -math.MaxInt32 {
			return fmt.Errorf("%s is out of range", string(data))
		}
		f.Value, f.Set = int(n), true
		return nil
	}

	n, err := strconv.ParseFloat(text, 64)
	if err != nil || n != math.Trunc(n) {
		return fmt.Errorf("%s is not a whole number", string(data))
	}
	if math.Abs(n) > math.MaxInt32 {
		return fmt.Errorf("%s is out of range", string(data))
	}
	f.Value, f.Set = int(n), true
	return nil
}

// flexString decodes a JSON string or number into its text form
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if strings.HasPrefix(string(data), `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// LoadReport summarises what Decode had to fix or discard
type LoadReport struct {
	Loaded   int
	Repaired int
	Dropped  int
}

// Clean reports whether every record loaded unchanged
func (r LoadReport) Clean() bool {
	return r.Repaired == 0 && r.Dropped == 0
}

func (r LoadReport) String() string {
	return fmt.Sprintf("loaded=%d repaired=%d dropped=%d", r.Loaded, r.Repaired, r.Dropped)
}

// Encode serializes the collection in canonical form
func Encode(timers []model.Timer) (string, error) {
	records := make([]wireTimer, 0, len(timers))
	for _, t := range timers {
		records = append(records, wireTimer{
			ID:        t.ID,
			Name:      t.Name,
			Duration:  t.Duration,
			Category:  t.Category,
			Status:    t.Status.String(),
			Remaining: t.Remaining,
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshal timers: %w", err)
	}
	return string(data), nil
}

// Decode parses a persisted collection. A blob that is not a JSON array
// fails with ErrCorruptCollection. Records are validated one by one:
// repairable ones are clamped back into the invariants, the rest are dropped.
// newID supplies ids for records whose id is missing or duplicated.
func Decode(data string, newID func() string) ([]model.Timer, LoadReport, error) {
	var report LoadReport

	trimmed := strings.TrimSpace(data)
	if trimmed == "" || trimmed == "null" {
		return []model.Timer{}, report, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return []model.Timer{}, report, fmt.Errorf("%w: %v", ErrCorruptCollection, err)
	}

	timers := make([]model.Timer, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, item := range raw {
		var record legacyTimer
		if err := json.Unmarshal(item, &record); err != nil {
			report.Dropped++
			continue
		}

		timer, repaired, ok := repairRecord(record)
		if !ok {
			report.Dropped++
			continue
		}

		if _, duplicate := seen[timer.ID]; timer.ID == "" || duplicate {
			timer.ID = uniqueID(func(id string) bool {
				_, taken := seen[id]
				return taken
			}, newID)
			repaired = true
		}
		seen[timer.ID] = struct{}{}

		if repaired {
			report.Repaired++
		}
		timers = append(timers, timer)
	}

	report.Loaded = len(timers)
	return timers, report, nil
}

// repairRecord converts a decoded record into a Timer that satisfies the
// invariants. ok is false when the record cannot be salvaged.
func repairRecord(record legacyTimer) (timer model.Timer, repaired bool, ok bool) {
	if strings.TrimSpace(record.Name) == "" || strings.TrimSpace(record.Category) == "" {
		return model.Timer{}, false, false
	}
	if !record.Duration.Set || record.Duration.Value < 1 {
		return model.Timer{}, false, false
	}

	timer = model.Timer{
		ID:        string(record.ID),
		Name:      record.Name,
		Category:  record.Category,
		Duration:  record.Duration.Value,
		Remaining: record.Remaining.Value,
		Status:    model.TimerStatus(record.Status),
	}

	if !timer.Status.IsValid() {
		timer.Status = model.TimerStatusPaused
		repaired = true
	}
	if !record.Remaining.Set {
		timer.Remaining = timer.Duration
		repaired = true
	}
	if timer.Remaining < 0 {
		timer.Remaining = 0
		repaired = true
	}
	if timer.Remaining > timer.Duration {
		timer.Remaining = timer.Duration
		repaired = true
	}
	if timer.Status.IsFinished() && timer.Remaining != 0 {
		timer.Remaining = 0
		repaired = true
	}
	return timer, repaired, true
}

// maxIDAttempts bounds how often uniqueID asks newID before deriving an id
const maxIDAttempts = 8

// uniqueID draws ids from newID until one is non-empty and not taken. If
// newID keeps colliding, the last candidate gets a numeric suffix instead.
func uniqueID(taken func(string) bool, newID func() string) string {
	var candidate string
	for range maxIDAttempts {
		candidate = newID()
		if candidate != "" && !taken(candidate) {
			return candidate
		}
	}

	if candidate == "" {
		candidate = "timer"
	}
	for n := 2; ; n++ {
		id := fmt.Sprintf("%s-%d", candidate, n)
		if !taken(id) {
			return id
		}
	}
}
