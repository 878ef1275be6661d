// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Subject is a course or topic record. Alumni holds identifiers of the users
// enrolled in the subject, in enrollment order.
type Subject struct {
	// ID is assigned by the storage layer on creation and never changes.
	ID string `json:"id"`

	Name    string `json:"name" validate:"required"`
	Teacher string `json:"teacher" validate:"required"`

	// Alumni references users by ID. Entries are not checked against the
	// user store.
	Alumni []string `json:"alumni" validate:"dive,required"`
}

// NewSubject builds a Subject ready to be stored. Name and teacher must be
// non-empty and are kept as given; a nil alumni list becomes an empty one so
// it is always encoded as a JSON array.
func NewSubject(name, teacher string, alumni []string) (Subject, error) {
	if name == "" {
		return Subject{}, fmt.Errorf("%w: name", ErrRequiredField)
	}
	if teacher == "" {
		return Subject{}, fmt.Errorf("%w: teacher", ErrRequiredField)
	}

	if alumni == nil {
		alumni = []string{}
	}

	return Subject{
		Name:    name,
		Teacher: teacher,
		Alumni:  alumni,
	}, nil
}

// Normalize replaces a nil alumni list with an empty one.
func (s Subject) Normalize() Subject {
	if s.Alumni == nil {
		s.Alumni = []string{}
	}
	return s
}

// SubjectUpdate carries a partial update. A nil field was not provided by
// the caller and keeps its stored value; a non-nil Alumni replaces the whole
// list.
type SubjectUpdate struct {
	Name    *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Teacher *string  `json:"teacher,omitempty" validate:"omitempty,min=1"`
	Alumni  []string `json:"alumni,omitempty" validate:"omitempty,dive,required"`
}

// IsEmpty reports whether the update changes nothing.
func (u SubjectUpdate) IsEmpty() bool {
	return u.Name == nil && u.Teacher == nil && u.Alumni == nil
}

// ProvidedFields returns the struct field names set in the update. The names
// are used for partial validation.
func (u SubjectUpdate) ProvidedFields() []string {
	fields := make([]string, 0, 3)
	if u.Name != nil {
		fields = append(fields, "Name")
	}
	if u.Teacher != nil {
		fields = append(fields, "Teacher")
	}
	if u.Alumni != nil {
		fields = append(fields, "Alumni")
	}
	return fields
}

// Apply returns a copy of s with the provided fields of u set.
func (u SubjectUpdate) Apply(s Subject) Subject {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Teacher != nil {
		s.Teacher = *u.Teacher
	}
	if u.Alumni != nil {
		s.Alumni = append([]string{}, u.Alumni...)
	}
	return s.Normalize()
}
