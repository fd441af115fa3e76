package model

// MeetingData holds a transcript plus whatever metadata the caller already knows.
// Fields left empty are filled in by metadata extraction before analysis.
type MeetingData struct {
	Transcript   string   `json:"transcript"`
	Title        string   `json:"title,omitempty"`
	Date         string   `json:"date,omitempty"`
	Participants []string `json:"participants,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	MeetingType  string   `json:"meeting_type,omitempty"`
}

// Participant describes one meeting attendee as inferred from the transcript
type Participant struct {
	Name            string `json:"name"`
	Role            string `json:"role"`
	EmailPreference string `json:"email_preference"`
}

// MeetingMetadata is the result of the metadata extraction call
type MeetingMetadata struct {
	Title              string        `json:"title"`
	Date               string        `json:"date"`
	Participants       []Participant `json:"participants"`
	Duration           string        `json:"duration"`
	SuggestedEmailType string        `json:"suggested_email_type"`
	MeetingType        string        `json:"meeting_type"`
}

// DefaultMetadata is the fallback when metadata extraction fails or returns garbage
func DefaultMetadata() MeetingMetadata {
	return MeetingMetadata{
		Title: "Meeting Analysis",
		Date:  "Not specified",
		Participants: []Participant{
			{Name: "Unknown", Role: "Participant", EmailPreference: "team"},
		},
		Duration:           "Not specified",
		SuggestedEmailType: "team",
		MeetingType:        "other",
	}
}

// ActionItem is a task extracted from the meeting.
// DueDate carries the sentinel "TBD" when no date was mentioned.
type ActionItem struct {
	Task     string `json:"task"`
	Owner    string `json:"owner"`
	DueDate  string `json:"due_date"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
}

// MeetingSummary is the final consolidated analysis of a whole meeting
type MeetingSummary struct {
	ExecutiveSummary string       `json:"executive_summary"`
	KeyDecisions     []string     `json:"key_decisions"`
	ActionItems      []ActionItem `json:"action_items"`
	NextSteps        []string     `json:"next_steps"`
	RisksConcerns    []string     `json:"risks_concerns"`
	FollowUpMeetings []string     `json:"follow_up_meetings"`
}
