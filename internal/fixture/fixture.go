// Package fixture holds the literal payloads served by the mock API.
// Functions return fresh values on every call; time-derived fields are
// computed from the supplied instant.
package fixture

import (
	"time"

	"tutormock/internal/model"
)

const (
	// SessionLeadTime is how far ahead the mock session is scheduled.
	SessionLeadTime = 24 * time.Hour
	// SessionLength is the mock session duration.
	SessionLength = time.Hour

	zoomMeetingID = "1234567890"
)

// Fixed identifiers shared between payloads so the frontend can cross-link them.
const (
	TuteeID       = "user-tutee-001"
	TutorID       = "user-tutor-001"
	TuteeProfile  = "tutee-profile-001"
	MathSubjectID = "subject-math"
	PhysSubjectID = "subject-physics"
	ChemSubjectID = "subject-chemistry"
	EngSubjectID  = "subject-english"
	HelpRequestID = "request-001"
)

// CurrentUser is the signed-in tutee.
func CurrentUser() model.User {
	return model.User{
		ID:              TuteeID,
		Email:           "alex.student@example.com",
		FirstName:       "Alex",
		LastName:        "Student",
		UserType:        "tutee",
		ProfileImageURL: "https://i.pravatar.cc/150?u=" + TuteeID,
		IsVerified:      true,
		TuteeProfile: &model.TuteeProfile{
			ID:                TuteeProfile,
			GradeLevel:        "Grade 11",
			School:            "Springfield High School",
			LearningGoals:     "Prepare for calculus and physics finals",
			PreferredSubjects: []string{MathSubjectID, PhysSubjectID},
		},
	}
}

// Login is the canned token issued for any credentials.
func Login(now time.Time) model.AuthToken {
	return model.AuthToken{
		Token:     "mock-jwt-token",
		ExpiresAt: model.Timestamp(now.Add(24 * time.Hour)),
		User:      CurrentUser(),
	}
}

// Subjects is the subject catalog.
func Subjects() []model.Subject {
	return []model.Subject{
		{ID: MathSubjectID, Name: "Mathematics", Category: "STEM", Description: "Algebra, geometry, calculus and statistics", IsActive: true},
		{ID: PhysSubjectID, Name: "Physics", Category: "STEM", Description: "Mechanics, electricity and waves", IsActive: true},
		{ID: ChemSubjectID, Name: "Chemistry", Category: "STEM", Description: "General and organic chemistry", IsActive: true},
		{ID: EngSubjectID, Name: "English", Category: "Languages", Description: "Essay writing, grammar and literature", IsActive: true},
	}
}

func tutorParticipant() model.Participant {
	return model.Participant{
		ID:              TutorID,
		FirstName:       "Jordan",
		LastName:        "Tutor",
		UserType:        "tutor",
		ProfileImageURL: "https://i.pravatar.cc/150?u=" + TutorID,
	}
}

func tuteeParticipant() model.Participant {
	u := CurrentUser()
	return model.Participant{
		ID:              u.ID,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		UserType:        u.UserType,
		ProfileImageURL: u.ProfileImageURL,
	}
}

// Conversations is the signed-in user's inbox; the last message is "now".
func Conversations(now time.Time) []model.Conversation {
	ts := model.Timestamp(now)
	return []model.Conversation{
		{
			ID:            "conversation-001",
			HelpRequestID: HelpRequestID,
			Participants:  []model.Participant{tuteeParticipant(), tutorParticipant()},
			LastMessage: model.Message{
				ID:        "message-001",
				SenderID:  TutorID,
				Content:   "Hi Alex, I can help with your derivatives homework. Does tomorrow work?",
				IsRead:    false,
				CreatedAt: ts,
			},
			UnreadCount: 1,
			UpdatedAt:   ts,
		},
	}
}

// Sessions is the upcoming schedule: one online session starting a day from now.
func Sessions(now time.Time) []model.Session {
	start := now.Add(SessionLeadTime)
	return []model.Session{
		{
			ID:              "session-001",
			TutorID:         TutorID,
			TuteeID:         TuteeID,
			SubjectID:       MathSubjectID,
			Title:           "Calculus: derivatives review",
			Description:     "Walk through chain rule and product rule exercises",
			SessionType:     "online",
			Status:          "scheduled",
			ScheduledStart:  model.Timestamp(start),
			ScheduledEnd:    model.Timestamp(start.Add(SessionLength)),
			DurationMinutes: int(SessionLength / time.Minute),
			ZoomJoinURL:     "https://zoom.us/j/" + zoomMeetingID,
			CreatedAt:       model.Timestamp(now),
		},
	}
}

// HelpRequests is the signed-in tutee's open requests.
func HelpRequests(now time.Time) []model.HelpRequest {
	return []model.HelpRequest{
		{
			ID:                   HelpRequestID,
			TuteeID:              TuteeID,
			SubjectID:            MathSubjectID,
			Title:                "Need help with derivatives",
			Description:          "Struggling with chain rule problems before Friday's test",
			Urgency:              "high",
			Status:               "open",
			PreferredSessionType: "online",
			Budget:               40,
			CreatedAt:            model.Timestamp(now),
		},
	}
}
