// Code generated by ent, DO NOT EDIT.

package bridgeversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/attune-health/attune/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldLTE(FieldID, id))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v string) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldEQ(FieldPatientID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldEQ(FieldVersion, v))
}

// MetadataID applies equality check predicate on the "metadata_id" field. It's identical to MetadataIDEQ.
func MetadataID(v int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldEQ(FieldMetadataID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v string) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v string) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...string) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...string) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v string) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v string) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v string) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v string) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDContains applies the Contains predicate on the "patient_id" field.
func PatientIDContains(v string) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldContains(FieldPatientID, v))
}

// PatientIDHasPrefix applies the HasPrefix predicate on the "patient_id" field.
func PatientIDHasPrefix(v string) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldHasPrefix(FieldPatientID, v))
}

// PatientIDHasSuffix applies the HasSuffix predicate on the "patient_id" field.
func PatientIDHasSuffix(v string) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldHasSuffix(FieldPatientID, v))
}

// PatientIDEqualFold applies the EqualFold predicate on the "patient_id" field.
func PatientIDEqualFold(v string) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldEqualFold(FieldPatientID, v))
}

// PatientIDContainsFold applies the ContainsFold predicate on the "patient_id" field.
func PatientIDContainsFold(v string) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldContainsFold(FieldPatientID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldLTE(FieldVersion, v))
}

// MetadataIDEQ applies the EQ predicate on the "metadata_id" field.
func MetadataIDEQ(v int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldEQ(FieldMetadataID, v))
}

// MetadataIDNEQ applies the NEQ predicate on the "metadata_id" field.
func MetadataIDNEQ(v int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldNEQ(FieldMetadataID, v))
}

// MetadataIDIn applies the In predicate on the "metadata_id" field.
func MetadataIDIn(vs ...int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldIn(FieldMetadataID, vs...))
}

// MetadataIDNotIn applies the NotIn predicate on the "metadata_id" field.
func MetadataIDNotIn(vs ...int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldNotIn(FieldMetadataID, vs...))
}

// MetadataIDGT applies the GT predicate on the "metadata_id" field.
func MetadataIDGT(v int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldGT(FieldMetadataID, v))
}

// MetadataIDGTE applies the GTE predicate on the "metadata_id" field.
func MetadataIDGTE(v int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldGTE(FieldMetadataID, v))
}

// MetadataIDLT applies the LT predicate on the "metadata_id" field.
func MetadataIDLT(v int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldLT(FieldMetadataID, v))
}

// MetadataIDLTE applies the LTE predicate on the "metadata_id" field.
func MetadataIDLTE(v int) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldLTE(FieldMetadataID, v))
}

// MetadataIDIsNil applies the IsNil predicate on the "metadata_id" field.
func MetadataIDIsNil() predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldIsNull(FieldMetadataID))
}

// MetadataIDNotNil applies the NotNil predicate on the "metadata_id" field.
func MetadataIDNotNil() predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldNotNull(FieldMetadataID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.BridgeVersion {
	return predicate.BridgeVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.BridgeVersion {
	return predicate.BridgeVersion(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BridgeVersion) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BridgeVersion) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BridgeVersion) predicate.BridgeVersion {
	return predicate.BridgeVersion(sql.NotPredicates(p))
}
