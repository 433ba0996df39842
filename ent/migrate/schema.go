// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BridgeVersionsColumns holds the columns for the "bridge_versions" table.
	BridgeVersionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "version", Type: field.TypeInt},
		{Name: "data", Type: field.TypeJSON},
		{Name: "metadata_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeString},
	}
	// BridgeVersionsTable holds the schema information for the "bridge_versions" table.
	BridgeVersionsTable = &schema.Table{
		Name:       "bridge_versions",
		Columns:    BridgeVersionsColumns,
		PrimaryKey: []*schema.Column{BridgeVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bridge_versions_patients_bridge_versions",
				Columns:    []*schema.Column{BridgeVersionsColumns[5]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "bridgeversion_patient_id_version",
				Unique:  true,
				Columns: []*schema.Column{BridgeVersionsColumns[5], BridgeVersionsColumns[1]},
			},
		},
	}
	// GenerationCostsColumns holds the columns for the "generation_costs" table.
	GenerationCostsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "cost_usd", Type: field.TypeFloat64},
		{Name: "duration_ms", Type: field.TypeInt},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "patient_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GenerationCostsTable holds the schema information for the "generation_costs" table.
	GenerationCostsTable = &schema.Table{
		Name:       "generation_costs",
		Columns:    GenerationCostsColumns,
		PrimaryKey: []*schema.Column{GenerationCostsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "generationcost_session_id",
				Unique:  false,
				Columns: []*schema.Column{GenerationCostsColumns[7]},
			},
			{
				Name:    "generationcost_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{GenerationCostsColumns[8], GenerationCostsColumns[10]},
			},
			{
				Name:    "generationcost_task_created_at",
				Unique:  false,
				Columns: []*schema.Column{GenerationCostsColumns[1], GenerationCostsColumns[10]},
			},
		},
	}
	// GenerationMetadataColumns holds the columns for the "generation_metadata" table.
	GenerationMetadataColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "journey_version_id", Type: field.TypeInt, Nullable: true},
		{Name: "bridge_version_id", Type: field.TypeInt, Nullable: true},
		{Name: "sessions_analyzed", Type: field.TypeInt},
		{Name: "total_sessions", Type: field.TypeInt},
		{Name: "model_used", Type: field.TypeString},
		{Name: "compaction_strategy", Type: field.TypeString, Nullable: true},
		{Name: "generation_timestamp", Type: field.TypeTime},
		{Name: "generation_duration_ms", Type: field.TypeInt},
	}
	// GenerationMetadataTable holds the schema information for the "generation_metadata" table.
	GenerationMetadataTable = &schema.Table{
		Name:       "generation_metadata",
		Columns:    GenerationMetadataColumns,
		PrimaryKey: []*schema.Column{GenerationMetadataColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "generationmetadata_journey_version_id",
				Unique:  false,
				Columns: []*schema.Column{GenerationMetadataColumns[1]},
			},
			{
				Name:    "generationmetadata_bridge_version_id",
				Unique:  false,
				Columns: []*schema.Column{GenerationMetadataColumns[2]},
			},
		},
	}
	// JourneyVersionsColumns holds the columns for the "journey_versions" table.
	JourneyVersionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "version", Type: field.TypeInt},
		{Name: "data", Type: field.TypeJSON},
		{Name: "metadata_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeString},
	}
	// JourneyVersionsTable holds the schema information for the "journey_versions" table.
	JourneyVersionsTable = &schema.Table{
		Name:       "journey_versions",
		Columns:    JourneyVersionsColumns,
		PrimaryKey: []*schema.Column{JourneyVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "journey_versions_patients_journey_versions",
				Columns:    []*schema.Column{JourneyVersionsColumns[5]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "journeyversion_patient_id_version",
				Unique:  true,
				Columns: []*schema.Column{JourneyVersionsColumns[5], JourneyVersionsColumns[1]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "patient_id", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
	}
	// PatientBridgesColumns holds the columns for the "patient_bridges" table.
	PatientBridgesColumns = []*schema.Column{
		{Name: "patient_id", Type: field.TypeString, Unique: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "version", Type: field.TypeInt},
		{Name: "metadata_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PatientBridgesTable holds the schema information for the "patient_bridges" table.
	PatientBridgesTable = &schema.Table{
		Name:       "patient_bridges",
		Columns:    PatientBridgesColumns,
		PrimaryKey: []*schema.Column{PatientBridgesColumns[0]},
	}
	// PatientJourneysColumns holds the columns for the "patient_journeys" table.
	PatientJourneysColumns = []*schema.Column{
		{Name: "patient_id", Type: field.TypeString, Unique: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "version", Type: field.TypeInt},
		{Name: "metadata_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PatientJourneysTable holds the schema information for the "patient_journeys" table.
	PatientJourneysTable = &schema.Table{
		Name:       "patient_journeys",
		Columns:    PatientJourneysColumns,
		PrimaryKey: []*schema.Column{PatientJourneysColumns[0]},
	}
	// PipelineEventsColumns holds the columns for the "pipeline_events" table.
	PipelineEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"TRANSCRIPT", "WAVE1", "WAVE2", "WAVE3"}},
		{Name: "event_type", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "consumed", Type: field.TypeBool, Default: false},
		{Name: "patient_id", Type: field.TypeString},
	}
	// PipelineEventsTable holds the schema information for the "pipeline_events" table.
	PipelineEventsTable = &schema.Table{
		Name:       "pipeline_events",
		Columns:    PipelineEventsColumns,
		PrimaryKey: []*schema.Column{PipelineEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pipeline_events_patients_pipeline_events",
				Columns:    []*schema.Column{PipelineEventsColumns[8]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pipelineevent_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineEventsColumns[8], PipelineEventsColumns[6]},
			},
			{
				Name:    "pipelineevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineEventsColumns[6]},
			},
		},
	}
	// ProcessingLogsColumns holds the columns for the "processing_logs" table.
	ProcessingLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "wave", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"started", "completed", "failed", "stopped"}, Default: "started"},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "session_id", Type: field.TypeString},
	}
	// ProcessingLogsTable holds the schema information for the "processing_logs" table.
	ProcessingLogsTable = &schema.Table{
		Name:       "processing_logs",
		Columns:    ProcessingLogsColumns,
		PrimaryKey: []*schema.Column{ProcessingLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "processing_logs_therapy_sessions_processing_logs",
				Columns:    []*schema.Column{ProcessingLogsColumns[8]},
				RefColumns: []*schema.Column{TherapySessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processinglog_session_id_wave_started_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingLogsColumns[8], ProcessingLogsColumns[1], ProcessingLogsColumns[4]},
			},
			{
				Name:    "processinglog_status",
				Unique:  false,
				Columns: []*schema.Column{ProcessingLogsColumns[2]},
			},
		},
	}
	// TherapySessionsColumns holds the columns for the "therapy_sessions" table.
	TherapySessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "session_date", Type: field.TypeTime},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "transcript", Type: field.TypeJSON},
		{Name: "processing_status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "stopped"}, Default: "pending"},
		{Name: "analysis_status", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "speaker_labels", Type: field.TypeJSON, Nullable: true},
		{Name: "labels_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "mood_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "mood_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "mood_rationale", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "mood_indicators", Type: field.TypeJSON, Nullable: true},
		{Name: "emotional_tone", Type: field.TypeString, Nullable: true},
		{Name: "topics", Type: field.TypeJSON, Nullable: true},
		{Name: "action_items", Type: field.TypeJSON, Nullable: true},
		{Name: "technique", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true},
		{Name: "action_items_summary", Type: field.TypeString, Nullable: true},
		{Name: "has_breakthrough", Type: field.TypeBool, Nullable: true},
		{Name: "breakthrough_label", Type: field.TypeString, Nullable: true},
		{Name: "breakthrough_data", Type: field.TypeJSON, Nullable: true},
		{Name: "mood_analyzed_at", Type: field.TypeTime, Nullable: true},
		{Name: "topics_extracted_at", Type: field.TypeTime, Nullable: true},
		{Name: "breakthrough_detected_at", Type: field.TypeTime, Nullable: true},
		{Name: "wave1_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "deep_analysis", Type: field.TypeJSON, Nullable: true},
		{Name: "analysis_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "prose_analysis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "deep_analyzed_at", Type: field.TypeTime, Nullable: true},
		{Name: "prose_generated_at", Type: field.TypeTime, Nullable: true},
		{Name: "patient_id", Type: field.TypeString},
	}
	// TherapySessionsTable holds the schema information for the "therapy_sessions" table.
	TherapySessionsTable = &schema.Table{
		Name:       "therapy_sessions",
		Columns:    TherapySessionsColumns,
		PrimaryKey: []*schema.Column{TherapySessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "therapy_sessions_patients_sessions",
				Columns:    []*schema.Column{TherapySessionsColumns[36]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "therapysession_patient_id_session_date",
				Unique:  false,
				Columns: []*schema.Column{TherapySessionsColumns[36], TherapySessionsColumns[1]},
			},
			{
				Name:    "therapysession_processing_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TherapySessionsColumns[4], TherapySessionsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BridgeVersionsTable,
		GenerationCostsTable,
		GenerationMetadataTable,
		JourneyVersionsTable,
		PatientsTable,
		PatientBridgesTable,
		PatientJourneysTable,
		PipelineEventsTable,
		ProcessingLogsTable,
		TherapySessionsTable,
	}
)

func init() {
	BridgeVersionsTable.ForeignKeys[0].RefTable = PatientsTable
	GenerationMetadataTable.Annotation = &entsql.Annotation{
		Table: "generation_metadata",
	}
	JourneyVersionsTable.ForeignKeys[0].RefTable = PatientsTable
	PipelineEventsTable.ForeignKeys[0].RefTable = PatientsTable
	ProcessingLogsTable.ForeignKeys[0].RefTable = TherapySessionsTable
	TherapySessionsTable.ForeignKeys[0].RefTable = PatientsTable
}
