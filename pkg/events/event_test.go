package events

import (
	"testing"
	"time"
)

func TestNewBaseEvent(t *testing.T) {
	aggregateID := "applicant-123"
	tenantID := "tenant-456"

	before := time.Now().UTC()
	event := NewBaseEvent("ApplicantEvaluated", aggregateID, "Applicant", tenantID)
	after := time.Now().UTC()

	if event.EventID() == "" {
		t.Error("expected non-empty event ID")
	}

	if event.EventType() != "ApplicantEvaluated" {
		t.Errorf("expected event type %q, got %q", "ApplicantEvaluated", event.EventType())
	}

	if event.AggregateID() != aggregateID {
		t.Errorf("expected aggregate ID %v, got %v", aggregateID, event.AggregateID())
	}

	if event.AggregateType() != "Applicant" {
		t.Errorf("expected aggregate type %q, got %q", "Applicant", event.AggregateType())
	}

	if event.TenantID() != tenantID {
		t.Errorf("expected tenant ID %q, got %q", tenantID, event.TenantID())
	}

	if event.OccurredAt().Before(before) || event.OccurredAt().After(after) {
		t.Errorf("expected occurredAt between %v and %v, got %v", before, after, event.OccurredAt())
	}
}

func TestBaseEventImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = BaseEvent{}
}

func TestEventIDsAreUnique(t *testing.T) {
	e1 := NewBaseEvent("ApplicantEvaluated", "agg", "Applicant", "")
	e2 := NewBaseEvent("ApplicantEvaluated", "agg", "Applicant", "")

	if e1.EventID() == e2.EventID() {
		t.Error("expected distinct event IDs for separately constructed events")
	}
}
