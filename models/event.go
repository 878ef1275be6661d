// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EventType names a subject lifecycle change. The value doubles as the
// routing key when events are published to a message broker.
type EventType string

const (
	SubjectCreated EventType = "subject.created"
	SubjectUpdated EventType = "subject.updated"
	SubjectDeleted EventType = "subject.deleted"
)

// SubjectEvent is emitted after a subject was successfully changed.
type SubjectEvent struct {
	Type      EventType `json:"type"`
	SubjectID string    `json:"subject_id"`

	// Subject is the state after the change. It is nil for deletions.
	Subject *Subject `json:"subject,omitempty"`

	OccurredAt time.Time `json:"occurred_at"`
}

// NewSubjectEvent stamps an event with the current UTC time.
func NewSubjectEvent(eventType EventType, subjectID string, subject *Subject) SubjectEvent {
	return SubjectEvent{
		Type:       eventType,
		SubjectID:  subjectID,
		Subject:    subject,
		OccurredAt: time.Now().UTC(),
	}
}
