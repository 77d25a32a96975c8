package drafts

import (
	"context"
	"time"

	"mediflow-onboarding/internal/app/contracts"
	"mediflow-onboarding/internal/app/models"
	"mediflow-onboarding/internal/pkg/constvars"
	"mediflow-onboarding/internal/pkg/exceptions"
	"mediflow-onboarding/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type draftStore struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
	sealKey         [32]byte
	ttl             time.Duration
}

// NewDraftStore builds the Redis-backed draft store. Drafts hold passwords in
// flight, so payloads are sealed with a secretbox key derived from sealSecret
// before they touch Redis.
func NewDraftStore(redisRepository contracts.RedisRepository, log *zap.Logger, sealKey [32]byte, ttlInHour int) contracts.DraftStore {
	return &draftStore{
		RedisRepository: redisRepository,
		Log:             log,
		sealKey:         sealKey,
		ttl:             time.Duration(ttlInHour) * time.Hour,
	}
}

func (s *draftStore) Load(ctx context.Context, draftID string) (*models.WizardDraft, error) {
	sealed, err := s.RedisRepository.GetBytes(ctx, constvars.RedisKeyDraftPrefix+draftID)
	if err != nil {
		return nil, err
	}
	if len(sealed) == 0 {
		return models.EmptyDraft(draftID), nil
	}

	payload, err := utils.Open(sealed, &s.sealKey)
	if err != nil {
		s.Log.Warn("drafts.Load sealed payload unreadable, starting fresh",
			zap.String("draft_id", draftID),
			zap.Error(err),
		)
		return models.EmptyDraft(draftID), nil
	}

	var draft models.WizardDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		s.Log.Warn("drafts.Load stored draft malformed, starting fresh",
			zap.String("draft_id", draftID),
			zap.Error(err),
		)
		return models.EmptyDraft(draftID), nil
	}

	draft.ID = draftID
	return &draft, nil
}

func (s *draftStore) Save(ctx context.Context, draft *models.WizardDraft) error {
	draft.UpdatedAt = time.Now().UTC()

	payload, err := json.Marshal(draft)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	sealed, err := utils.Seal(payload, &s.sealKey)
	if err != nil {
		return exceptions.ErrServerProcess(err)
	}

	return s.RedisRepository.SetBytes(ctx, constvars.RedisKeyDraftPrefix+draft.ID, sealed, s.ttl)
}

func (s *draftStore) Clear(ctx context.Context, draftID string) error {
	return s.RedisRepository.Delete(ctx, constvars.RedisKeyDraftPrefix+draftID)
}
