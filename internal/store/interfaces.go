// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store owns all interaction with persistent storage.
//
// Two backends implement the repository interfaces: MongoDB (document store,
// the default deployment) and SQL (PostgreSQL or SQLite through
// database/sql). [NewStorages] picks the backend from the DSN scheme.
package store

import (
	"context"

	"github.com/MKhiriev/go-subjects/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SubjectRepository persists subject records.
type SubjectRepository interface {
	// CreateSubject stores a new subject with a generated ID and returns the
	// stored record.
	CreateSubject(ctx context.Context, subject models.Subject) (models.Subject, error)

	// ListSubjects returns every subject in storage order.
	ListSubjects(ctx context.Context) ([]models.Subject, error)

	// GetSubjectByID returns [ErrSubjectNotFound] when id is absent or
	// malformed.
	GetSubjectByID(ctx context.Context, id string) (models.Subject, error)

	// UpdateSubject applies the provided fields and returns the updated
	// record, or [ErrSubjectNotFound].
	UpdateSubject(ctx context.Context, id string, update models.SubjectUpdate) (models.Subject, error)

	// DeleteSubject removes the subject, or returns [ErrSubjectNotFound].
	DeleteSubject(ctx context.Context, id string) error
}

// UserRepository reads users owned by the user subsystem.
type UserRepository interface {
	// GetUserByID returns [ErrUserNotFound] when id is absent or malformed.
	GetUserByID(ctx context.Context, id string) (models.User, error)
}
