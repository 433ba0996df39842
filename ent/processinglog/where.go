// Code generated by ent, DO NOT EDIT.

package processinglog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/attune-health/attune/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldSessionID, v))
}

// Wave applies equality check predicate on the "wave" field. It's identical to WaveEQ.
func Wave(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldWave, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldRetryCount, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldDurationMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldErrorMessage, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldContainsFold(FieldSessionID, v))
}

// WaveEQ applies the EQ predicate on the "wave" field.
func WaveEQ(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldWave, v))
}

// WaveNEQ applies the NEQ predicate on the "wave" field.
func WaveNEQ(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNEQ(FieldWave, v))
}

// WaveIn applies the In predicate on the "wave" field.
func WaveIn(vs ...string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIn(FieldWave, vs...))
}

// WaveNotIn applies the NotIn predicate on the "wave" field.
func WaveNotIn(vs ...string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotIn(FieldWave, vs...))
}

// WaveGT applies the GT predicate on the "wave" field.
func WaveGT(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGT(FieldWave, v))
}

// WaveGTE applies the GTE predicate on the "wave" field.
func WaveGTE(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGTE(FieldWave, v))
}

// WaveLT applies the LT predicate on the "wave" field.
func WaveLT(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLT(FieldWave, v))
}

// WaveLTE applies the LTE predicate on the "wave" field.
func WaveLTE(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLTE(FieldWave, v))
}

// WaveContains applies the Contains predicate on the "wave" field.
func WaveContains(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldContains(FieldWave, v))
}

// WaveHasPrefix applies the HasPrefix predicate on the "wave" field.
func WaveHasPrefix(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldHasPrefix(FieldWave, v))
}

// WaveHasSuffix applies the HasSuffix predicate on the "wave" field.
func WaveHasSuffix(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldHasSuffix(FieldWave, v))
}

// WaveEqualFold applies the EqualFold predicate on the "wave" field.
func WaveEqualFold(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEqualFold(FieldWave, v))
}

// WaveContainsFold applies the ContainsFold predicate on the "wave" field.
func WaveContainsFold(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldContainsFold(FieldWave, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotIn(FieldStatus, vs...))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLTE(FieldRetryCount, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotNull(FieldDurationMs))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.ProcessingLog {
	return predicate.ProcessingLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.TherapySession) predicate.ProcessingLog {
	return predicate.ProcessingLog(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessingLog) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessingLog) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessingLog) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.NotPredicates(p))
}
