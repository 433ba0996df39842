package services

import (
	"context"
	"fmt"
	"time"

	"github.com/attune-health/attune/ent"
)

// MetadataService manages generation metadata rows directly. The version
// store creates metadata inside its save transaction; this service
// exists for consumers that edit a row after the fact. Journey and
// Bridge share this code, not rows: editing one metadata row never
// affects another feature's rows.
type MetadataService struct {
	client *ent.Client
}

// NewMetadataService creates a new MetadataService
func NewMetadataService(client *ent.Client) *MetadataService {
	return &MetadataService{client: client}
}

// CreateMetadataRequest carries the fields of one metadata row. Exactly
// one of JourneyVersionID and BridgeVersionID must be set.
type CreateMetadataRequest struct {
	JourneyVersionID   *int
	BridgeVersionID    *int
	SessionsAnalyzed   int
	TotalSessions      int
	ModelUsed          string
	CompactionStrategy string
	Duration           time.Duration
}

// CreateMetadata inserts a metadata row, enforcing the XOR between the
// two version references at the application level (the schema carries a
// matching CHECK constraint).
func (s *MetadataService) CreateMetadata(httpCtx context.Context, req CreateMetadataRequest) (*ent.GenerationMetadata, error) {
	if (req.JourneyVersionID == nil) == (req.BridgeVersionID == nil) {
		return nil, NewValidationError("version_id", "exactly one of journey_version_id and bridge_version_id must be set")
	}
	if req.ModelUsed == "" {
		return nil, NewValidationError("model_used", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, writeTimeout)
	defer cancel()

	create := s.client.GenerationMetadata.Create().
		SetSessionsAnalyzed(req.SessionsAnalyzed).
		SetTotalSessions(req.TotalSessions).
		SetModelUsed(req.ModelUsed).
		SetGenerationDurationMs(int(req.Duration.Milliseconds()))
	if req.JourneyVersionID != nil {
		create.SetJourneyVersionID(*req.JourneyVersionID)
	}
	if req.BridgeVersionID != nil {
		create.SetBridgeVersionID(*req.BridgeVersionID)
	}
	if req.CompactionStrategy != "" {
		create.SetCompactionStrategy(req.CompactionStrategy)
	}

	metadata, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata: %w", err)
	}
	return metadata, nil
}

// MetadataPatch is a partial update; nil members are left untouched.
type MetadataPatch struct {
	SessionsAnalyzed *int
	TotalSessions    *int
	ModelUsed        *string
	Duration         *time.Duration
}

// UpdateMetadata applies a partial update to one metadata row.
func (s *MetadataService) UpdateMetadata(httpCtx context.Context, id int, patch MetadataPatch) (*ent.GenerationMetadata, error) {
	ctx, cancel := context.WithTimeout(httpCtx, writeTimeout)
	defer cancel()

	update := s.client.GenerationMetadata.UpdateOneID(id)
	if patch.SessionsAnalyzed != nil {
		update.SetSessionsAnalyzed(*patch.SessionsAnalyzed)
	}
	if patch.TotalSessions != nil {
		update.SetTotalSessions(*patch.TotalSessions)
	}
	if patch.ModelUsed != nil {
		update.SetModelUsed(*patch.ModelUsed)
	}
	if patch.Duration != nil {
		update.SetGenerationDurationMs(int(patch.Duration.Milliseconds()))
	}

	metadata, err := update.Save(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("metadata %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}
	return metadata, nil
}

// GetMetadata fetches one metadata row.
func (s *MetadataService) GetMetadata(ctx context.Context, id int) (*ent.GenerationMetadata, error) {
	metadata, err := s.client.GenerationMetadata.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("metadata %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata: %w", err)
	}
	return metadata, nil
}
