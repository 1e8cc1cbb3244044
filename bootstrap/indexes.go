package bootstrap

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"mddrc-backend/internal/store"
)

type index struct {
	collection string
	keys       bson.D
	name       string
	unique     bool
}

var indexes = []index{
	{store.UsersCollection, bson.D{{Key: "id_number", Value: 1}}, "uniq_id_number", true},
	{store.UsersCollection, bson.D{{Key: "email", Value: 1}}, "idx_email", false},
	{store.UsersCollection, bson.D{{Key: "role", Value: 1}}, "idx_role", false},
	{store.CompaniesCollection, bson.D{{Key: "name", Value: 1}}, "uniq_company_name", true},
	{store.SessionsCollection, bson.D{{Key: "participant_ids", Value: 1}}, "idx_participants", false},
	{store.SessionsCollection, bson.D{{Key: "coordinator_id", Value: 1}}, "idx_coordinator", false},
	{store.SessionsCollection, bson.D{{Key: "start_date", Value: 1}}, "idx_start_date", false},
	// One access record per participant per session.
	{store.ParticipantAccessCollection, bson.D{{Key: "participant_id", Value: 1}, {Key: "session_id", Value: 1}}, "uniq_participant_session", true},
	{store.TestsCollection, bson.D{{Key: "program_id", Value: 1}}, "idx_program", false},
	{store.TestResultsCollection, bson.D{{Key: "session_id", Value: 1}, {Key: "participant_id", Value: 1}}, "idx_session_participant", false},
	{store.FeedbackTemplatesCollection, bson.D{{Key: "program_id", Value: 1}}, "uniq_feedback_program", true},
	{store.CourseFeedbackCollection, bson.D{{Key: "session_id", Value: 1}}, "idx_session", false},
	{store.VehicleChecklistsCollection, bson.D{{Key: "session_id", Value: 1}, {Key: "participant_id", Value: 1}}, "idx_session_participant", false},
	{store.VehicleDetailsCollection, bson.D{{Key: "participant_id", Value: 1}, {Key: "session_id", Value: 1}}, "uniq_participant_session", true},
	{store.AttendanceCollection, bson.D{{Key: "session_id", Value: 1}, {Key: "participant_id", Value: 1}, {Key: "date", Value: 1}}, "uniq_session_participant_date", true},
	{store.ParticipantAttendanceCollection, bson.D{{Key: "session_id", Value: 1}, {Key: "participant_id", Value: 1}}, "uniq_session_participant", true},
	{store.CertificatesCollection, bson.D{{Key: "session_id", Value: 1}, {Key: "participant_id", Value: 1}}, "uniq_session_participant", true},
	{store.TrainingReportsCollection, bson.D{{Key: "session_id", Value: 1}, {Key: "coordinator_id", Value: 1}}, "uniq_session_coordinator", true},
	{store.AuditLogsCollection, bson.D{{Key: "resource_type", Value: 1}, {Key: "resource_id", Value: 1}, {Key: "timestamp", Value: -1}}, "idx_resource_time", false},
}

// EnsureIndexes creates every index the services rely on. Existing indexes
// with the same definition are left alone.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, ix := range indexes {
		opts := options.Index().SetName(ix.name)
		if ix.unique {
			opts.SetUnique(true)
		}
		_, err := db.Collection(ix.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    ix.keys,
			Options: opts,
		})
		if err != nil {
			return errors.Wrapf(err, "ensure index %s.%s", ix.collection, ix.name)
		}
	}
	return nil
}
