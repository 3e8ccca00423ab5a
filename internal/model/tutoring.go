package model

// Pure response literals for the tutoring marketplace. Field names follow the
// camelCase wire format the frontend expects.

// TuteeProfile is the learner-specific part of a user.
type TuteeProfile struct {
	ID                string   `json:"id"`
	GradeLevel        string   `json:"gradeLevel"`
	School            string   `json:"school"`
	LearningGoals     string   `json:"learningGoals"`
	PreferredSubjects []string `json:"preferredSubjects"`
}

// User is the authenticated account returned by /auth/me.
type User struct {
	ID              string        `json:"id"`
	Email           string        `json:"email"`
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	UserType        string        `json:"userType"`
	ProfileImageURL string        `json:"profileImageUrl"`
	IsVerified      bool          `json:"isVerified"`
	TuteeProfile    *TuteeProfile `json:"tuteeProfile"`
}

// AuthToken is the canned login result.
type AuthToken struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
	User      User   `json:"user"`
}

// Logout is the canned logout result.
type Logout struct {
	LoggedOut bool `json:"loggedOut"`
}

// Subject is a teachable subject.
type Subject struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

// Participant is one side of a conversation.
type Participant struct {
	ID              string `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	UserType        string `json:"userType"`
	ProfileImageURL string `json:"profileImageUrl"`
}

// Message is a single chat message.
type Message struct {
	ID        string `json:"id"`
	SenderID  string `json:"senderId"`
	Content   string `json:"content"`
	IsRead    bool   `json:"isRead"`
	CreatedAt string `json:"createdAt"`
}

// Conversation is a chat thread between a tutor and a tutee.
type Conversation struct {
	ID            string        `json:"id"`
	HelpRequestID string        `json:"helpRequestId"`
	Participants  []Participant `json:"participants"`
	LastMessage   Message       `json:"lastMessage"`
	UnreadCount   int           `json:"unreadCount"`
	UpdatedAt     string        `json:"updatedAt"`
}

// Session is a scheduled tutoring session.
type Session struct {
	ID              string `json:"id"`
	TutorID         string `json:"tutorId"`
	TuteeID         string `json:"tuteeId"`
	SubjectID       string `json:"subjectId"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	SessionType     string `json:"sessionType"`
	Status          string `json:"status"`
	ScheduledStart  string `json:"scheduledStart"`
	ScheduledEnd    string `json:"scheduledEnd"`
	DurationMinutes int    `json:"durationMinutes"`
	ZoomJoinURL     string `json:"zoomJoinUrl"`
	CreatedAt       string `json:"createdAt"`
}

// HelpRequest is a tutee's request for help on a subject.
type HelpRequest struct {
	ID                   string  `json:"id"`
	TuteeID              string  `json:"tuteeId"`
	SubjectID            string  `json:"subjectId"`
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	Urgency              string  `json:"urgency"`
	Status               string  `json:"status"`
	PreferredSessionType string  `json:"preferredSessionType"`
	Budget               float64 `json:"budget"`
	CreatedAt            string  `json:"createdAt"`
}

// Health is the liveness payload. It is not enveloped.
type Health struct {
	Status      string  `json:"status"`
	Timestamp   string  `json:"timestamp"`
	Uptime      float64 `json:"uptime"`
	Environment string  `json:"environment"`
	Version     string  `json:"version"`
	Database    string  `json:"database"`
	Redis       string  `json:"redis"`
}
