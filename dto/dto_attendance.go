package dto

import "mddrc-backend/internal/models"

type ClockRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

type ClockResponse struct {
	Message      string `json:"message"`
	AttendanceID string `json:"attendance_id,omitempty"`
}

type AttendanceView struct {
	models.Attendance
	ParticipantName string `json:"participant_name"`
}
