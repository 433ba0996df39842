// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/attune-health/attune/ent/bridgeversion"
	"github.com/attune-health/attune/ent/generationcost"
	"github.com/attune-health/attune/ent/generationmetadata"
	"github.com/attune-health/attune/ent/journeyversion"
	"github.com/attune-health/attune/ent/patient"
	"github.com/attune-health/attune/ent/patientbridge"
	"github.com/attune-health/attune/ent/patientjourney"
	"github.com/attune-health/attune/ent/pipelineevent"
	"github.com/attune-health/attune/ent/processinglog"
	"github.com/attune-health/attune/ent/schema"
	"github.com/attune-health/attune/ent/therapysession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	bridgeversionFields := schema.BridgeVersion{}.Fields()
	_ = bridgeversionFields
	// bridgeversionDescCreatedAt is the schema descriptor for created_at field.
	bridgeversionDescCreatedAt := bridgeversionFields[4].Descriptor()
	// bridgeversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	bridgeversion.DefaultCreatedAt = bridgeversionDescCreatedAt.Default.(func() time.Time)
	generationcostFields := schema.GenerationCost{}.Fields()
	_ = generationcostFields
	// generationcostDescCreatedAt is the schema descriptor for created_at field.
	generationcostDescCreatedAt := generationcostFields[9].Descriptor()
	// generationcost.DefaultCreatedAt holds the default value on creation for the created_at field.
	generationcost.DefaultCreatedAt = generationcostDescCreatedAt.Default.(func() time.Time)
	generationmetadataFields := schema.GenerationMetadata{}.Fields()
	_ = generationmetadataFields
	// generationmetadataDescGenerationTimestamp is the schema descriptor for generation_timestamp field.
	generationmetadataDescGenerationTimestamp := generationmetadataFields[6].Descriptor()
	// generationmetadata.DefaultGenerationTimestamp holds the default value on creation for the generation_timestamp field.
	generationmetadata.DefaultGenerationTimestamp = generationmetadataDescGenerationTimestamp.Default.(func() time.Time)
	journeyversionFields := schema.JourneyVersion{}.Fields()
	_ = journeyversionFields
	// journeyversionDescCreatedAt is the schema descriptor for created_at field.
	journeyversionDescCreatedAt := journeyversionFields[4].Descriptor()
	// journeyversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	journeyversion.DefaultCreatedAt = journeyversionDescCreatedAt.Default.(func() time.Time)
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientFields[2].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	patientbridgeFields := schema.PatientBridge{}.Fields()
	_ = patientbridgeFields
	// patientbridgeDescCreatedAt is the schema descriptor for created_at field.
	patientbridgeDescCreatedAt := patientbridgeFields[4].Descriptor()
	// patientbridge.DefaultCreatedAt holds the default value on creation for the created_at field.
	patientbridge.DefaultCreatedAt = patientbridgeDescCreatedAt.Default.(func() time.Time)
	// patientbridgeDescUpdatedAt is the schema descriptor for updated_at field.
	patientbridgeDescUpdatedAt := patientbridgeFields[5].Descriptor()
	// patientbridge.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patientbridge.DefaultUpdatedAt = patientbridgeDescUpdatedAt.Default.(func() time.Time)
	// patientbridge.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patientbridge.UpdateDefaultUpdatedAt = patientbridgeDescUpdatedAt.UpdateDefault.(func() time.Time)
	patientjourneyFields := schema.PatientJourney{}.Fields()
	_ = patientjourneyFields
	// patientjourneyDescCreatedAt is the schema descriptor for created_at field.
	patientjourneyDescCreatedAt := patientjourneyFields[4].Descriptor()
	// patientjourney.DefaultCreatedAt holds the default value on creation for the created_at field.
	patientjourney.DefaultCreatedAt = patientjourneyDescCreatedAt.Default.(func() time.Time)
	// patientjourneyDescUpdatedAt is the schema descriptor for updated_at field.
	patientjourneyDescUpdatedAt := patientjourneyFields[5].Descriptor()
	// patientjourney.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patientjourney.DefaultUpdatedAt = patientjourneyDescUpdatedAt.Default.(func() time.Time)
	// patientjourney.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patientjourney.UpdateDefaultUpdatedAt = patientjourneyDescUpdatedAt.UpdateDefault.(func() time.Time)
	pipelineeventFields := schema.PipelineEvent{}.Fields()
	_ = pipelineeventFields
	// pipelineeventDescCreatedAt is the schema descriptor for created_at field.
	pipelineeventDescCreatedAt := pipelineeventFields[6].Descriptor()
	// pipelineevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelineevent.DefaultCreatedAt = pipelineeventDescCreatedAt.Default.(func() time.Time)
	// pipelineeventDescConsumed is the schema descriptor for consumed field.
	pipelineeventDescConsumed := pipelineeventFields[7].Descriptor()
	// pipelineevent.DefaultConsumed holds the default value on creation for the consumed field.
	pipelineevent.DefaultConsumed = pipelineeventDescConsumed.Default.(bool)
	processinglogFields := schema.ProcessingLog{}.Fields()
	_ = processinglogFields
	// processinglogDescRetryCount is the schema descriptor for retry_count field.
	processinglogDescRetryCount := processinglogFields[3].Descriptor()
	// processinglog.DefaultRetryCount holds the default value on creation for the retry_count field.
	processinglog.DefaultRetryCount = processinglogDescRetryCount.Default.(int)
	// processinglogDescStartedAt is the schema descriptor for started_at field.
	processinglogDescStartedAt := processinglogFields[4].Descriptor()
	// processinglog.DefaultStartedAt holds the default value on creation for the started_at field.
	processinglog.DefaultStartedAt = processinglogDescStartedAt.Default.(func() time.Time)
	therapysessionFields := schema.TherapySession{}.Fields()
	_ = therapysessionFields
	// therapysessionDescCreatedAt is the schema descriptor for created_at field.
	therapysessionDescCreatedAt := therapysessionFields[9].Descriptor()
	// therapysession.DefaultCreatedAt holds the default value on creation for the created_at field.
	therapysession.DefaultCreatedAt = therapysessionDescCreatedAt.Default.(func() time.Time)
}
