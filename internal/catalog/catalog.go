package catalog

import "fmt"

// Statement is one behavioral prompt rated 1-10 by the coachee.
type Statement struct {
	Key    string
	Prompt string
}

// Dimension is one leadership competency category with six statements.
type Dimension struct {
	Key        string
	Title      string
	Statements []Statement
}

type Band string

const (
	BandHigh       Band = "high"
	BandMediumHigh Band = "medium_high"
	BandMedium     Band = "medium"
	BandMediumLow  Band = "medium_low"
	BandLow        Band = "low"
)

const (
	StatementsPerDimension = 6
	MinRating              = 1
	MaxRating              = 10
	MaxDimensionScore      = StatementsPerDimension * MaxRating
)

// BandFor maps a dimension total (0-60) to its interpretation band.
// Thresholds are inclusive: high >=51, medium_high 41-50, medium 31-40,
// medium_low 21-30, low <=20.
func BandFor(score int) Band {
	switch {
	case score >= 51:
		return BandHigh
	case score >= 41:
		return BandMediumHigh
	case score >= 31:
		return BandMedium
	case score >= 21:
		return BandMediumLow
	default:
		return BandLow
	}
}

// AllDimensions returns the catalog in its fixed order.
func AllDimensions() []Dimension {
	return dimensions
}

func DimensionByKey(key string) (Dimension, bool) {
	for _, d := range dimensions {
		if d.Key == key {
			return d, true
		}
	}
	return Dimension{}, false
}

// StatementsFor returns the ordered statements of one dimension. An unknown
// key is an invariant violation: every caller derives keys from the catalog
// itself, so this panics rather than returning an error.
func StatementsFor(dimensionKey string) []Statement {
	d, ok := DimensionByKey(dimensionKey)
	if !ok {
		panic(fmt.Sprintf("catalog: unknown dimension %q", dimensionKey))
	}
	return d.Statements
}

// HasStatement reports whether the (dimension, statement) pair exists.
func HasStatement(dimensionKey, statementKey string) bool {
	d, ok := DimensionByKey(dimensionKey)
	if !ok {
		return false
	}
	for _, s := range d.Statements {
		if s.Key == statementKey {
			return true
		}
	}
	return false
}

// RatingScale describes each rating level, shown beside the answer control.
var RatingScale = map[int]string{
	1:  "Does not yet demonstrate this behavior",
	2:  "Very rarely demonstrates this behavior",
	3:  "Rarely demonstrates this behavior",
	4:  "Occasionally demonstrates this behavior",
	5:  "Inconsistently demonstrates this behavior",
	6:  "Sometimes demonstrates this behavior",
	7:  "Often demonstrates this behavior",
	8:  "Frequently demonstrates this behavior",
	9:  "Consistently exemplifies this behavior",
	10: "Consistently exemplifies this behavior and teaches others",
}

var dimensions = []Dimension{
	{
		Key:   "purpose_vision",
		Title: "Purpose & Vision",
		Statements: []Statement{
			{Key: "vision", Prompt: "Creates and effectively communicates a compelling vision for the future"},
			{Key: "values", Prompt: "Clearly defines and consistently reinforces organizational values through actions"},
			{Key: "strategic", Prompt: "Considers long-term implications and broader context in decision making"},
			{Key: "meaningful", Prompt: "Helps others understand how their work contributes to larger organizational goals"},
			{Key: "legacy", Prompt: "Takes actions today that will have positive long-term impact on the organization"},
			{Key: "why", Prompt: "Clearly communicates the 'why' behind decisions and direction"},
		},
	},
	{
		Key:   "execution_impact",
		Title: "Execution & Impact",
		Statements: []Statement{
			{Key: "prioritize", Prompt: "Effectively prioritizes tasks and initiatives based on strategic importance"},
			{Key: "resources", Prompt: "Allocates and manages resources efficiently to achieve desired outcomes"},
			{Key: "quality", Prompt: "Consistently delivers high-quality results that meet or exceed expectations"},
			{Key: "expectations", Prompt: "Establishes and maintains clear performance expectations and accountability"},
			{Key: "goals", Prompt: "Sets specific, measurable, achievable, relevant, and time-bound goals"},
			{Key: "recognition", Prompt: "Recognizes and appreciates others' contributions and achievements"},
		},
	},
	{
		Key:   "trust_authenticity",
		Title: "Trust & Authenticity",
		Statements: []Statement{
			{Key: "listening", Prompt: "Practices active listening and demonstrates clear understanding of others' perspectives"},
			{Key: "sharing", Prompt: "Shares information clearly and openly with others"},
			{Key: "conversations", Prompt: "Engages in difficult conversations with candor and respect"},
			{Key: "safety", Prompt: "Creates an environment where team members feel safe to speak up and take risks"},
			{Key: "followthrough", Prompt: "Does what they say they will do by following through on commitments"},
			{Key: "attention", Prompt: "Gives full, undivided attention during interactions with others"},
		},
	},
	{
		Key:   "emotional_intelligence",
		Title: "Emotional Intelligence",
		Statements: []Statement{
			{Key: "awareness", Prompt: "Demonstrates awareness of own emotions and their impact on others"},
			{Key: "composure", Prompt: "Maintains composure and effectiveness under pressure"},
			{Key: "recognition", Prompt: "Recognizes and appropriately responds to others' emotions and needs"},
			{Key: "respect", Prompt: "Consistently treats all people with dignity and respect"},
			{Key: "conflict", Prompt: "Addresses and resolves conflicts constructively and professionally"},
			{Key: "feedback", Prompt: "Seeks and acts on feedback about own performance"},
		},
	},
	{
		Key:   "people_development",
		Title: "People Development",
		Statements: []Statement{
			{Key: "learning", Prompt: "Actively supports and encourages continuous learning and development"},
			{Key: "coaching", Prompt: "Provides effective coaching and mentoring to develop others' capabilities"},
			{Key: "strengths", Prompt: "Identifies and leverages individual and team member strengths"},
			{Key: "growth", Prompt: "Helps team members identify and pursue career growth opportunities"},
			{Key: "boundaries", Prompt: "Supports healthy work-life boundaries and personal well-being"},
			{Key: "motivation", Prompt: "Understands and responds to what motivates different team members"},
		},
	},
	{
		Key:   "team_leadership",
		Title: "Team Leadership",
		Statements: []Statement{
			{Key: "collaboration", Prompt: "Promotes effective collaboration and teamwork across the group"},
			{Key: "decisions", Prompt: "Involves team members appropriately in decisions that affect their work"},
			{Key: "viewpoints", Prompt: "Actively seeks and incorporates different viewpoints and ideas"},
			{Key: "environment", Prompt: "Creates a positive team environment where people enjoy their work"},
			{Key: "unity", Prompt: "Actively breaks down silos and promotes organizational unity"},
			{Key: "recognition", Prompt: "Recognizes team and individual contributions meaningfully"},
		},
	},
	{
		Key:   "change_management",
		Title: "Change Management",
		Statements: []Statement{
			{Key: "strategy", Prompt: "Develops clear change implementation strategies"},
			{Key: "pace", Prompt: "Effectively manages the pace and sequence of change"},
			{Key: "resistance", Prompt: "Identifies and constructively addresses resistance to change"},
			{Key: "execution", Prompt: "Develops and executes well-structured plans for implementing change"},
			{Key: "sustainability", Prompt: "Ensures changes are successfully embedded and sustained over time"},
			{Key: "assumptions", Prompt: "Challenges personal assumptions and biases during change"},
		},
	},
	{
		Key:   "strategic_influence",
		Title: "Strategic Influence",
		Statements: []Statement{
			{Key: "boundaries", Prompt: "Effectively influences decisions and actions across organizational boundaries"},
			{Key: "stakeholders", Prompt: "Builds and maintains productive relationships with key stakeholders"},
			{Key: "community", Prompt: "Actively engages in and promotes community service and social responsibility"},
			{Key: "innovation", Prompt: "Promotes and supports innovative thinking and creative solutions"},
			{Key: "trends", Prompt: "Anticipates future trends and positions the organization for success"},
			{Key: "networks", Prompt: "Builds strong networks across the organization and community"},
		},
	},
}
