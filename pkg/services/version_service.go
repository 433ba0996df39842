package services

import (
	"context"
	"fmt"
	"time"

	"github.com/attune-health/attune/ent"
	"github.com/attune-health/attune/ent/bridgeversion"
	"github.com/attune-health/attune/ent/journeyversion"
	"github.com/attune-health/attune/ent/patientbridge"
	"github.com/attune-health/attune/ent/patientjourney"
)

// MetadataInput describes one Journey or Bridge generation for the
// metadata row created alongside the new version.
type MetadataInput struct {
	SessionsAnalyzed   int
	TotalSessions      int
	ModelUsed          string
	CompactionStrategy string
	Duration           time.Duration
}

// VersionService is the versioned document store for Journey and Bridge.
// Each save is one transaction: bump version, append history, upsert the
// latest row, create metadata, link it back. All five writes commit
// together or not at all.
type VersionService struct {
	client *ent.Client
}

// NewVersionService creates a new VersionService
func NewVersionService(client *ent.Client) *VersionService {
	return &VersionService{client: client}
}

// SaveJourney writes a new Journey version for the patient and returns
// the history row.
func (s *VersionService) SaveJourney(httpCtx context.Context, patientID string, data map[string]interface{}, meta MetadataInput) (*ent.JourneyVersion, error) {
	if patientID == "" {
		return nil, NewValidationError("patient_id", "required")
	}
	if len(data) == 0 {
		return nil, NewValidationError("data", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, writeTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin journey transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	nextVersion := 1
	latest, err := tx.PatientJourney.Query().
		Where(patientjourney.IDEQ(patientID)).
		Only(ctx)
	switch {
	case err == nil:
		nextVersion = latest.Version + 1
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("failed to read latest journey: %w", err)
	}

	version, err := tx.JourneyVersion.Create().
		SetPatientID(patientID).
		SetVersion(nextVersion).
		SetData(data).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append journey version: %w", err)
	}

	err = tx.PatientJourney.Create().
		SetID(patientID).
		SetData(data).
		SetVersion(nextVersion).
		OnConflictColumns(patientjourney.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert latest journey: %w", err)
	}

	metadata, err := tx.GenerationMetadata.Create().
		SetJourneyVersionID(version.ID).
		SetSessionsAnalyzed(meta.SessionsAnalyzed).
		SetTotalSessions(meta.TotalSessions).
		SetModelUsed(meta.ModelUsed).
		SetCompactionStrategy(meta.CompactionStrategy).
		SetGenerationDurationMs(int(meta.Duration.Milliseconds())).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create journey metadata: %w", err)
	}

	version, err = tx.JourneyVersion.UpdateOne(version).
		SetMetadataID(metadata.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to link journey metadata: %w", err)
	}
	err = tx.PatientJourney.UpdateOneID(patientID).
		SetMetadataID(metadata.ID).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to link latest journey metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit journey version: %w", err)
	}
	return version, nil
}

// SaveBridge writes a new Bridge version for the patient. Mirrors
// SaveJourney over the bridge tables.
func (s *VersionService) SaveBridge(httpCtx context.Context, patientID string, data map[string]interface{}, meta MetadataInput) (*ent.BridgeVersion, error) {
	if patientID == "" {
		return nil, NewValidationError("patient_id", "required")
	}
	if len(data) == 0 {
		return nil, NewValidationError("data", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, writeTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin bridge transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	nextVersion := 1
	latest, err := tx.PatientBridge.Query().
		Where(patientbridge.IDEQ(patientID)).
		Only(ctx)
	switch {
	case err == nil:
		nextVersion = latest.Version + 1
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("failed to read latest bridge: %w", err)
	}

	version, err := tx.BridgeVersion.Create().
		SetPatientID(patientID).
		SetVersion(nextVersion).
		SetData(data).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append bridge version: %w", err)
	}

	err = tx.PatientBridge.Create().
		SetID(patientID).
		SetData(data).
		SetVersion(nextVersion).
		OnConflictColumns(patientbridge.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert latest bridge: %w", err)
	}

	metadata, err := tx.GenerationMetadata.Create().
		SetBridgeVersionID(version.ID).
		SetSessionsAnalyzed(meta.SessionsAnalyzed).
		SetTotalSessions(meta.TotalSessions).
		SetModelUsed(meta.ModelUsed).
		SetCompactionStrategy(meta.CompactionStrategy).
		SetGenerationDurationMs(int(meta.Duration.Milliseconds())).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create bridge metadata: %w", err)
	}

	version, err = tx.BridgeVersion.UpdateOne(version).
		SetMetadataID(metadata.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to link bridge metadata: %w", err)
	}
	err = tx.PatientBridge.UpdateOneID(patientID).
		SetMetadataID(metadata.ID).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to link latest bridge metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit bridge version: %w", err)
	}
	return version, nil
}

// GetJourney returns the patient's latest Journey, or ErrNotFound.
func (s *VersionService) GetJourney(ctx context.Context, patientID string) (*ent.PatientJourney, error) {
	journey, err := s.client.PatientJourney.Get(ctx, patientID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("journey for patient %s: %w", patientID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get journey: %w", err)
	}
	return journey, nil
}

// GetBridge returns the patient's latest Bridge, or ErrNotFound.
func (s *VersionService) GetBridge(ctx context.Context, patientID string) (*ent.PatientBridge, error) {
	bridge, err := s.client.PatientBridge.Get(ctx, patientID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("bridge for patient %s: %w", patientID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bridge: %w", err)
	}
	return bridge, nil
}

// ListJourneyVersions returns the patient's Journey history, newest
// first.
func (s *VersionService) ListJourneyVersions(ctx context.Context, patientID string) ([]*ent.JourneyVersion, error) {
	versions, err := s.client.JourneyVersion.Query().
		Where(journeyversion.PatientIDEQ(patientID)).
		Order(ent.Desc(journeyversion.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list journey versions: %w", err)
	}
	return versions, nil
}

// ListBridgeVersions returns the patient's Bridge history, newest first.
func (s *VersionService) ListBridgeVersions(ctx context.Context, patientID string) ([]*ent.BridgeVersion, error) {
	versions, err := s.client.BridgeVersion.Query().
		Where(bridgeversion.PatientIDEQ(patientID)).
		Order(ent.Desc(bridgeversion.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bridge versions: %w", err)
	}
	return versions, nil
}
