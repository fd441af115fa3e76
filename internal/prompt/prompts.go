package prompt

import (
	"fmt"
	"strings"

	"github.com/hoangvan1410/Minumate/internal/chunk"
	"github.com/hoangvan1410/Minumate/internal/llm"
	"github.com/hoangvan1410/Minumate/internal/model"
)

// System is the system role used for analysis calls
const System = `You are an expert meeting analyst and professional communication specialist with extensive experience in extracting actionable insights from meeting transcripts.

Your expertise includes:
- Identifying key decisions, action items, and next steps
- Understanding stakeholder concerns and business implications
- Extracting ownership and timeline information
- Recognizing risks and potential blockers

Always provide structured, clear, and actionable outputs with proper reasoning and context. Focus on business impact and accountability.`

// MetadataSystem is the system role used for metadata extraction
const MetadataSystem = "You are a precise metadata extraction assistant. Return only valid JSON."

// Metadata builds the metadata extraction prompt over the opening portion
// of a transcript.
func Metadata(transcript string) string {
	return fmt.Sprintf(`You are a meeting metadata extraction specialist. Analyze the transcript and extract comprehensive information:

TRANSCRIPT:
%s

Extract and return a JSON object with the following fields:
{
    "title": "Meeting title or topic (infer from content if not explicitly stated)",
    "date": "Meeting date (YYYY-MM-DD format, or 'Not specified' if unclear)",
    "participants": [
        {
            "name": "Full name of participant",
            "role": "Their role/title (Manager, Developer, Designer, QA, etc.)",
            "email_preference": "executive|team|action|external"
        }
    ],
    "duration": "Meeting duration (estimate in minutes if not specified, e.g., '60 minutes')",
    "suggested_email_type": "executive|team|action|external",
    "meeting_type": "status|planning|review|decision|other"
}

Guidelines:
- For participants: Extract names and infer their roles from context, titles mentioned, or speaking patterns
- For meeting_type: Categorize the meeting purpose

Return only valid JSON, no additional text.`, transcript)
}

// ChunkEnrichment carries the cross-chunk context embedded in each per-chunk
// prompt. It is built fresh by the orchestrator for every call; the chunk
// itself is never mutated.
type ChunkEnrichment struct {
	PreviousSummary string
	MeetingTitle    string
	MeetingType     string
	Participants    []string
}

// Chunk builds the per-chunk analysis prompt: running context first, then
// the chunk text, then the required JSON shape.
func Chunk(c chunk.Chunk, enr ChunkEnrichment) string {
	return fmt.Sprintf(`Analyze this portion of a meeting transcript in its running context.

CONTEXT:
Previous discussion: %s
Meeting title: %s
Meeting type: %s
Time period: %s - %s
Speakers: %s

TRANSCRIPT CHUNK:
%s

Extract what this portion contributes to the meeting record and return a JSON object with the following structure:
{
    "summary": "2-3 sentence narrative of this portion",
    "key_points": ["point1", "point2", ...],
    "action_items": ["task (owner, due date if mentioned)", ...],
    "decisions": ["decision1", ...]
}

Return only valid JSON, no additional text.`,
		orNA(enr.PreviousSummary),
		orNA(enr.MeetingTitle),
		orNA(enr.MeetingType),
		c.StartTime, c.EndTime,
		strings.Join(c.Speakers, ", "),
		c.Text)
}

// Analysis builds the whole-transcript structured extraction prompt
func Analysis(meeting model.MeetingData) string {
	participants := "Not specified"
	if len(meeting.Participants) > 0 {
		participants = strings.Join(meeting.Participants, ", ")
	}

	return fmt.Sprintf(`Analyze the following meeting transcript and extract structured information.
Apply chain-of-thought reasoning to understand context and implications.

MEETING DETAILS:
Title: %s
Date: %s
Participants: %s
Duration: %s

TRANSCRIPT:
%s

ANALYSIS REQUIREMENTS:
1. EXECUTIVE SUMMARY (2-3 paragraphs):
   - Key outcomes and business impact
   - Main challenges or concerns raised
   - Overall meeting sentiment and next steps

2. KEY DECISIONS (bullet points):
   - Specific decisions made during the meeting
   - Context and reasoning behind each decision

3. ACTION ITEMS (structured format):
   For each action item, extract:
   - Task description
   - Owner (person responsible)
   - Due date (if mentioned, otherwise "TBD")
   - Priority level (Critical/High/Medium/Low based on context)

4. NEXT STEPS (ordered list):
   - Immediate actions to be taken
   - Follow-up activities mentioned

5. RISKS & CONCERNS (bullet points):
   - Potential obstacles or challenges identified
   - Business risks mentioned
   - Resource or timeline concerns

6. FOLLOW-UP MEETINGS (if mentioned):
   - Any scheduled follow-up meetings or reviews

Please provide your analysis in JSON format with the following structure:
{
    "executive_summary": "string",
    "key_decisions": ["decision1", "decision2", ...],
    "action_items": [
        {
            "task": "string",
            "owner": "string",
            "due_date": "string",
            "priority": "string"
        }
    ],
    "next_steps": ["step1", "step2", ...],
    "risks_concerns": ["risk1", "risk2", ...],
    "follow_up_meetings": ["meeting1", "meeting2", ...]
}`,
		meeting.Title, meeting.Date, participants, meeting.Duration, meeting.Transcript)
}

// AnalysisExamples are few-shot exchanges sent ahead of the real analysis
// request to anchor the output format.
func AnalysisExamples() []llm.Message {
	return []llm.Message{
		{
			Role:    llm.RoleUser,
			Content: "Analyze this meeting excerpt: 'John will update the budget spreadsheet by Friday. Sarah mentioned she'll handle the client presentation. We need to address the server issues before launch.'",
		},
		{
			Role: llm.RoleAssistant,
			Content: `{
    "executive_summary": "The team assigned ownership of the budget spreadsheet and client presentation, and flagged server issues as a launch blocker.",
    "key_decisions": ["Server issues must be resolved before launch"],
    "action_items": [
        {"task": "Update budget spreadsheet", "owner": "John", "due_date": "Friday", "priority": "High"},
        {"task": "Handle client presentation", "owner": "Sarah", "due_date": "TBD", "priority": "Medium"}
    ],
    "next_steps": ["Resolve server issues"],
    "risks_concerns": ["Server issues could delay launch timeline"],
    "follow_up_meetings": []
}`,
		},
	}
}

// FormatBulletPoints renders items as bullet points
func FormatBulletPoints(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatActionItems renders action items into a readable list
func FormatActionItems(items []model.ActionItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		due := item.DueDate
		if due == "" {
			due = "TBD"
		}
		lines = append(lines, fmt.Sprintf("- %s (Owner: %s, Priority: %s, Due: %s)", item.Task, item.Owner, item.Priority, due))
	}
	return strings.Join(lines, "\n")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
