package audit

import (
	"context"
	"sync"

	"mediflow-onboarding/internal/app/contracts"
	"mediflow-onboarding/internal/app/models"
	"mediflow-onboarding/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionSignupAttempts = "signup_attempts"

var (
	auditRepositoryInstance contracts.AuditRepository
	onceAuditRepository     sync.Once
)

type auditMongoRepository struct {
	Collection *mongo.Collection
}

// NewAuditMongoRepository stores one document per submission attempt. Records
// are append-only; nothing in the flow updates or deletes them.
func NewAuditMongoRepository(db *mongo.Database) contracts.AuditRepository {
	onceAuditRepository.Do(func() {
		auditRepositoryInstance = &auditMongoRepository{
			Collection: db.Collection(collectionSignupAttempts),
		}
	})
	return auditRepositoryInstance
}

func (r *auditMongoRepository) RecordAttempt(ctx context.Context, attempt *models.SignupAttempt) error {
	if attempt.ID == "" {
		attempt.ID = uuid.NewString()
	}

	_, err := r.Collection.InsertOne(ctx, attempt)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *auditMongoRepository) LatestByEmailMasked(ctx context.Context, emailMasked string) (*models.SignupAttempt, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "attempted_at", Value: -1}})

	var attempt models.SignupAttempt
	err := r.Collection.FindOne(ctx, bson.M{"email_masked": emailMasked}, opts).Decode(&attempt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &attempt, nil
}
