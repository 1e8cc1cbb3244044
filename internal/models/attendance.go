package models

import "time"

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// Attendance is a participant's clock-in/clock-out on one local calendar date.
type Attendance struct {
	ID            string     `bson:"_id" json:"id"`
	SessionID     string     `bson:"session_id" json:"session_id"`
	ParticipantID string     `bson:"participant_id" json:"participant_id"`
	Date          string     `bson:"date" json:"date"`
	ClockInTime   *time.Time `bson:"clock_in_time,omitempty" json:"clock_in_time,omitempty"`
	ClockOutTime  *time.Time `bson:"clock_out_time,omitempty" json:"clock_out_time,omitempty"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
}

func (a Attendance) DocID() string { return a.ID }

// ParticipantAttendance is the coordinator's present/absent mark for a session.
type ParticipantAttendance struct {
	ID            string    `bson:"_id" json:"id"`
	SessionID     string    `bson:"session_id" json:"session_id"`
	ParticipantID string    `bson:"participant_id" json:"participant_id"`
	Status        string    `bson:"status" json:"status"`
	MarkedBy      string    `bson:"marked_by" json:"marked_by"`
	MarkedAt      time.Time `bson:"marked_at" json:"marked_at"`
}

func (a ParticipantAttendance) DocID() string { return a.ID }
