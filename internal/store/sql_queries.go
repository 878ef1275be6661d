package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-subjects/models"
)

const (
	subjectsTable = "subjects"
	alumniTable   = "subject_alumni"
	usersTable    = "users"
)

func buildInsertSubjectQuery(b sq.StatementBuilderType, subject models.Subject) (string, []any, error) {
	return b.Insert(subjectsTable).
		Columns("id", "name", "teacher").
		Values(subject.ID, subject.Name, subject.Teacher).
		ToSql()
}

// buildInsertAlumniQuery inserts alumni in list order; position keeps the
// order stable on read.
func buildInsertAlumniQuery(b sq.StatementBuilderType, subjectID string, alumni []string) (string, []any, error) {
	insert := b.Insert(alumniTable).Columns("subject_id", "position", "user_id")
	for i, userID := range alumni {
		insert = insert.Values(subjectID, i, userID)
	}

	return insert.ToSql()
}

func buildSelectSubjectsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("id", "name", "teacher").
		From(subjectsTable).
		OrderBy("created_at", "id").
		ToSql()
}

func buildSelectSubjectByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select("id", "name", "teacher").
		From(subjectsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildSelectAlumniQuery selects alumni of the given subjects. No IDs means
// all subjects.
func buildSelectAlumniQuery(b sq.StatementBuilderType, subjectIDs ...string) (string, []any, error) {
	query := b.Select("subject_id", "user_id").
		From(alumniTable).
		OrderBy("subject_id", "position")
	if len(subjectIDs) > 0 {
		query = query.Where(sq.Eq{"subject_id": subjectIDs})
	}

	return query.ToSql()
}

// buildUpdateSubjectQuery sets only the scalar fields present in update.
// ok is false when no scalar column changes.
func buildUpdateSubjectQuery(b sq.StatementBuilderType, id string, update models.SubjectUpdate) (query string, args []any, ok bool, err error) {
	stmt := b.Update(subjectsTable).Where(sq.Eq{"id": id})

	if update.Name != nil {
		stmt = stmt.Set("name", *update.Name)
		ok = true
	}
	if update.Teacher != nil {
		stmt = stmt.Set("teacher", *update.Teacher)
		ok = true
	}
	if !ok {
		return "", nil, false, nil
	}

	query, args, err = stmt.ToSql()
	return query, args, true, err
}

func buildSubjectExistsQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select("1").
		From(subjectsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteAlumniQuery(b sq.StatementBuilderType, subjectID string) (string, []any, error) {
	return b.Delete(alumniTable).
		Where(sq.Eq{"subject_id": subjectID}).
		ToSql()
}

func buildDeleteSubjectQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(subjectsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select("id", "name", "age", "email").
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
