// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BridgeVersion is the predicate function for bridgeversion builders.
type BridgeVersion func(*sql.Selector)

// GenerationCost is the predicate function for generationcost builders.
type GenerationCost func(*sql.Selector)

// GenerationMetadata is the predicate function for generationmetadata builders.
type GenerationMetadata func(*sql.Selector)

// JourneyVersion is the predicate function for journeyversion builders.
type JourneyVersion func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// PatientBridge is the predicate function for patientbridge builders.
type PatientBridge func(*sql.Selector)

// PatientJourney is the predicate function for patientjourney builders.
type PatientJourney func(*sql.Selector)

// PipelineEvent is the predicate function for pipelineevent builders.
type PipelineEvent func(*sql.Selector)

// ProcessingLog is the predicate function for processinglog builders.
type ProcessingLog func(*sql.Selector)

// TherapySession is the predicate function for therapysession builders.
type TherapySession func(*sql.Selector)
