package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/go-subjects/internal/logger"
	"github.com/MKhiriev/go-subjects/models"
)

// subjectDocument is the stored shape of a subject.
type subjectDocument struct {
	ID      primitive.ObjectID   `bson:"_id,omitempty"`
	Name    string               `bson:"name"`
	Teacher string               `bson:"teacher"`
	Alumni  []primitive.ObjectID `bson:"alumni"`
}

func (d subjectDocument) toModel() models.Subject {
	alumni := make([]string, 0, len(d.Alumni))
	for _, id := range d.Alumni {
		alumni = append(alumni, id.Hex())
	}

	return models.Subject{
		ID:      d.ID.Hex(),
		Name:    d.Name,
		Teacher: d.Teacher,
		Alumni:  alumni,
	}
}

// alumniObjectIDs converts alumni to ObjectIDs. An entry that is not a
// 24-hex string yields [ErrInvalidID].
func alumniObjectIDs(alumni []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(alumni))
	for _, a := range alumni {
		id, err := primitive.ObjectIDFromHex(a)
		if err != nil {
			return nil, fmt.Errorf("%w: alumni %q", ErrInvalidID, a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type mongoSubjectRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewMongoSubjectRepository constructs a [SubjectRepository] over the
// "subjects" collection of m.
func NewMongoSubjectRepository(m *MongoDB, logger *logger.Logger) SubjectRepository {
	logger.Debug().Msg("creating mongo subject repository")
	return &mongoSubjectRepository{
		collection: m.db.Collection(subjectsCollection),
		logger:     logger,
	}
}

func (r *mongoSubjectRepository) CreateSubject(ctx context.Context, subject models.Subject) (models.Subject, error) {
	log := logger.FromContext(ctx)

	alumni, err := alumniObjectIDs(subject.Alumni)
	if err != nil {
		return models.Subject{}, err
	}

	doc := subjectDocument{
		ID:      primitive.NewObjectID(),
		Name:    subject.Name,
		Teacher: subject.Teacher,
		Alumni:  alumni,
	}
	if _, err = r.collection.InsertOne(ctx, doc); err != nil {
		log.Err(err).Str("func", "*mongoSubjectRepository.CreateSubject").Msg("error inserting subject")
		return models.Subject{}, mongoError(err)
	}

	return doc.toModel(), nil
}

func (r *mongoSubjectRepository) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		log.Err(err).Str("func", "*mongoSubjectRepository.ListSubjects").Msg("error finding subjects")
		return nil, mongoError(err)
	}

	var docs []subjectDocument
	if err = cursor.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "*mongoSubjectRepository.ListSubjects").Msg("error decoding subjects")
		return nil, mongoError(err)
	}

	subjects := make([]models.Subject, 0, len(docs))
	for _, d := range docs {
		subjects = append(subjects, d.toModel())
	}

	return subjects, nil
}

func (r *mongoSubjectRepository) GetSubjectByID(ctx context.Context, id string) (models.Subject, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Subject{}, ErrSubjectNotFound
	}

	var doc subjectDocument
	err = r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: objectID}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Subject{}, ErrSubjectNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoSubjectRepository.GetSubjectByID").Msg("error finding subject")
		return models.Subject{}, mongoError(err)
	}

	return doc.toModel(), nil
}

// UpdateSubject sets only the provided fields and returns the document as it
// is after the update. An empty update reads the current document.
func (r *mongoSubjectRepository) UpdateSubject(ctx context.Context, id string, update models.SubjectUpdate) (models.Subject, error) {
	log := logger.FromContext(ctx)

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Subject{}, ErrSubjectNotFound
	}

	set := bson.D{}
	if update.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *update.Name})
	}
	if update.Teacher != nil {
		set = append(set, bson.E{Key: "teacher", Value: *update.Teacher})
	}
	if update.Alumni != nil {
		alumni, err := alumniObjectIDs(update.Alumni)
		if err != nil {
			return models.Subject{}, err
		}
		set = append(set, bson.E{Key: "alumni", Value: alumni})
	}
	if len(set) == 0 {
		return r.GetSubjectByID(ctx, id)
	}

	var doc subjectDocument
	err = r.collection.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: objectID}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Subject{}, ErrSubjectNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*mongoSubjectRepository.UpdateSubject").Msg("error updating subject")
		return models.Subject{}, mongoError(err)
	}

	return doc.toModel(), nil
}

func (r *mongoSubjectRepository) DeleteSubject(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrSubjectNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: objectID}})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoSubjectRepository.DeleteSubject").Msg("error deleting subject")
		return mongoError(err)
	}
	if res.DeletedCount == 0 {
		return ErrSubjectNotFound
	}

	return nil
}
