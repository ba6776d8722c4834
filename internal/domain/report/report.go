package report

import (
	"fmt"
	"regexp"
	"time"
)

// Kind is the time bucket a report series belongs to.
type Kind string

const (
	KindWeekly    Kind = "weekly"
	KindMonthly   Kind = "monthly"
	KindQuarterly Kind = "quarterly"
)

var validKinds = map[Kind]bool{
	KindWeekly:    true,
	KindMonthly:   true,
	KindQuarterly: true,
}

// Period key shapes per kind: ISO week, calendar month, quarter.
var periodKeyPatterns = map[Kind]*regexp.Regexp{
	KindWeekly:    regexp.MustCompile(`^\d{4}-W(0[1-9]|[1-4]\d|5[0-3])$`),
	KindMonthly:   regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`),
	KindQuarterly: regexp.MustCompile(`^\d{4}-Q[1-4]$`),
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	return validKinds[k]
}

// ValidateKey checks the period key against the shape the kind requires.
func (k Kind) ValidateKey(key string) error {
	pattern, ok := periodKeyPatterns[k]
	if !ok {
		return fmt.Errorf("invalid report kind: %s", k)
	}
	if !pattern.MatchString(key) {
		return fmt.Errorf("invalid %s period key: %s", k, key)
	}
	return nil
}

// AllKinds returns every report kind.
func AllKinds() []Kind {
	return []Kind{KindWeekly, KindMonthly, KindQuarterly}
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid report kind: %s", s)
	}
	return k, nil
}

// Report is a period-scoped summary. At most one report exists per
// (kind, period key); saving replaces the payload wholesale.
type Report struct {
	id        uint
	kind      Kind
	periodKey string
	payload   Payload
	createdAt time.Time
	updatedAt time.Time
}

func NewReport(kind Kind, periodKey string, payload Payload) (*Report, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid report kind: %s", kind)
	}
	if err := kind.ValidateKey(periodKey); err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Report{
		kind:      kind,
		periodKey: periodKey,
		payload:   payload,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReport(
	id uint,
	kind Kind,
	periodKey string,
	payload Payload,
	createdAt, updatedAt time.Time,
) (*Report, error) {
	if id == 0 {
		return nil, fmt.Errorf("report ID cannot be zero")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid report kind: %s", kind)
	}
	if len(periodKey) == 0 {
		return nil, fmt.Errorf("period key is required")
	}

	return &Report{
		id:        id,
		kind:      kind,
		periodKey: periodKey,
		payload:   payload,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (r *Report) ID() uint             { return r.id }
func (r *Report) Kind() Kind           { return r.kind }
func (r *Report) PeriodKey() string    { return r.periodKey }
func (r *Report) Payload() Payload     { return r.payload }
func (r *Report) CreatedAt() time.Time { return r.createdAt }
func (r *Report) UpdatedAt() time.Time { return r.updatedAt }

func (r *Report) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("report ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("report ID cannot be zero")
	}
	r.id = id
	return nil
}

// ReplacePayload overwrites the payload wholesale. There is no field-level
// merge; the last save wins.
func (r *Report) ReplacePayload(payload Payload) error {
	if err := payload.Validate(); err != nil {
		return err
	}
	r.payload = payload
	r.updatedAt = time.Now()
	return nil
}
