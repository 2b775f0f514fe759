package catalog

import "fmt"

// Interpretation is the narrative pair for one (dimension, band) cell:
// an analysis of the observed level and a suggested development focus.
type Interpretation struct {
	Interpretation string
	Development    string
}

// TextFor looks up the narrative for a dimension and band. Unknown keys are
// an invariant violation, same as StatementsFor.
func TextFor(dimensionKey string, band Band) Interpretation {
	byBand, ok := interpretations[dimensionKey]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown dimension %q", dimensionKey))
	}
	text, ok := byBand[band]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown band %q", band))
	}
	return text
}

var interpretations = map[string]map[Band]Interpretation{
	"purpose_vision": {
		BandHigh: {
			Interpretation: "Demonstrates exceptional strategic leadership with clear vision articulation and execution. Consistently connects organizational purpose to daily operations while helping others see their role in the bigger picture. Shows sophisticated understanding of how values drive behavior and decisions.",
			Development:    "Lead enterprise-wide strategic initiatives. Mentor other leaders in vision development and strategic communication. Create frameworks for vision deployment across multiple organizational levels.",
		},
		BandMediumHigh: {
			Interpretation: "Shows strong capability in strategic thinking and vision communication. Successfully translates organizational goals into actionable plans. Effectively reinforces values through consistent behavior.",
			Development:    "Practice articulating more complex strategic concepts. Develop systematic approaches to connecting daily work to organizational purpose. Seek opportunities to influence strategic direction beyond immediate area.",
		},
		BandMedium: {
			Interpretation: "Demonstrates growing strategic capability but may struggle with consistent implementation. Shows basic understanding of vision importance and values alignment. Sometimes connects daily work to larger purpose but could be more proactive.",
			Development:    "Build strategic thinking skills through structured exercises and mentoring. Practice translating organizational vision into team-specific goals. Work with mentor on developing more sophisticated approaches.",
		},
		BandMediumLow: {
			Interpretation: "Shows basic understanding of vision's importance but struggles with practical application. May focus primarily on tactical execution with limited strategic perspective. Inconsistent in connecting work to larger organizational purpose.",
			Development:    "Start with fundamental strategic thinking concepts. Learn basic vision communication techniques. Practice connecting daily decisions to organizational values.",
		},
		BandLow: {
			Interpretation: "Primarily focused on immediate tasks with limited strategic awareness. May struggle to see beyond day-to-day operations. Needs significant development in strategic thinking and vision communication.",
			Development:    "Begin with basic concepts of organizational purpose and values. Learn fundamental strategic thinking tools. Practice articulating simple strategic goals.",
		},
	},
	"execution_impact": {
		BandHigh: {
			Interpretation: "Demonstrates exceptional ability to deliver results while maintaining highest quality standards. Expertly balances multiple priorities and resources to achieve optimal outcomes. Shows sophisticated understanding of goal-setting and accountability processes.",
			Development:    "Lead organizational effectiveness initiatives. Mentor others in project and resource management. Create frameworks for goal-setting and accountability.",
		},
		BandMediumHigh: {
			Interpretation: "Shows strong capability in delivering results and managing resources. Successfully balances multiple priorities most of the time. Demonstrates good understanding of goal-setting and accountability.",
			Development:    "Enhance project management skills through advanced training. Build expertise in resource optimization. Develop more sophisticated approaches to performance management.",
		},
		BandMedium: {
			Interpretation: "Demonstrates growing ability in execution but may lack consistency. Shows basic understanding of resource management and goal-setting. Sometimes struggles with balancing priorities.",
			Development:    "Build structured approach to project management. Practice resource allocation techniques. Work on developing more effective goal-setting systems.",
		},
		BandMediumLow: {
			Interpretation: "Shows basic understanding of execution principles but struggles with implementation. May focus more on activity than results. Inconsistent in resource management or quality standards.",
			Development:    "Learn fundamental project management principles. Practice basic priority-setting techniques. Develop simple but effective accountability systems.",
		},
		BandLow: {
			Interpretation: "Limited understanding of execution principles and practices. May struggle with basic resource management or quality standards. Needs significant growth in fundamental management skills.",
			Development:    "Start with basic concepts of project management. Learn fundamental resource allocation principles. Practice simple goal-setting techniques.",
		},
	},
	"trust_authenticity": {
		BandHigh: {
			Interpretation: "Demonstrates exceptional ability to build and maintain trust through consistent authentic behavior. Creates strong psychological safety where team members freely share ideas and take risks. Shows sophisticated understanding of active listening and follow-through.",
			Development:    "Lead organizational trust-building initiatives. Mentor others in creating psychological safety. Create frameworks for authentic leadership development.",
		},
		BandMediumHigh: {
			Interpretation: "Shows strong capability in building trust and maintaining authenticity. Successfully creates safe environments for open dialogue. Demonstrates good understanding of active listening and follow-through.",
			Development:    "Enhance trust-building skills through advanced training. Build expertise in creating psychological safety. Develop more sophisticated approaches to difficult conversations.",
		},
		BandMedium: {
			Interpretation: "Demonstrates growing ability in trust-building but may lack consistency. Shows basic understanding of psychological safety and authentic behavior. Sometimes struggles with active listening or follow-through.",
			Development:    "Build structured approach to trust-building. Practice active listening techniques. Work on developing more effective communication strategies.",
		},
		BandMediumLow: {
			Interpretation: "Shows basic understanding of trust principles but struggles with implementation. May create unintended barriers to psychological safety. Inconsistent in listening or follow-through.",
			Development:    "Learn fundamental trust-building principles. Practice basic listening techniques. Develop simple but effective communication strategies.",
		},
		BandLow: {
			Interpretation: "Limited understanding of trust-building principles and practices. May inadvertently undermine psychological safety. Needs significant growth in basic communication skills.",
			Development:    "Start with basic concepts of trust-building. Learn fundamental listening principles. Practice simple communication techniques.",
		},
	},
	"emotional_intelligence": {
		BandHigh: {
			Interpretation: "Demonstrates exceptional self-awareness and emotional regulation. Expertly reads and responds to others' emotional needs. Shows sophisticated understanding of conflict resolution and relationship management. Particularly skilled at maintaining composure under pressure.",
			Development:    "Lead organizational EQ development initiatives. Mentor others in emotional intelligence growth. Create frameworks for conflict resolution. Share best practices in building emotionally intelligent cultures.",
		},
		BandMediumHigh: {
			Interpretation: "Shows strong capability in emotional awareness and regulation. Successfully reads and responds to others' emotions. Demonstrates good understanding of conflict resolution. Generally effective at maintaining composure under pressure.",
			Development:    "Enhance emotional intelligence through advanced training. Build expertise in conflict resolution. Develop more sophisticated approaches to relationship management.",
		},
		BandMedium: {
			Interpretation: "Demonstrates growing emotional awareness but may lack consistency. Shows basic understanding of others' emotions and conflict resolution. Sometimes struggles with composure under pressure.",
			Development:    "Build structured approach to emotional awareness. Practice emotion regulation techniques. Work on developing more effective conflict resolution strategies.",
		},
		BandMediumLow: {
			Interpretation: "Shows basic understanding of emotional intelligence but struggles with implementation. May miss emotional cues or react inappropriately. Inconsistent in conflict resolution or composure.",
			Development:    "Learn fundamental emotional intelligence principles. Practice basic emotion regulation techniques. Develop simple but effective conflict resolution approaches.",
		},
		BandLow: {
			Interpretation: "Limited understanding of emotional intelligence principles and practices. May struggle with basic emotional awareness or regulation. Needs significant growth in fundamental relationship skills.",
			Development:    "Start with basic concepts of emotional intelligence. Learn fundamental emotion regulation principles. Practice simple conflict resolution techniques.",
		},
	},
	"people_development": {
		BandHigh: {
			Interpretation: "Demonstrates exceptional ability to develop others through structured and informal approaches. Shows sophisticated understanding of individual learning styles and motivation. Creates robust development plans that align personal growth with organizational needs.",
			Development:    "Lead organizational development initiatives. Create mentoring programs and frameworks. Share best practices in talent development. Consider speaking or writing about development approaches.",
		},
		BandMediumHigh: {
			Interpretation: "Shows strong capability in developing others and understanding motivation. Successfully creates and implements development plans. Demonstrates good ability to identify and leverage strengths. Generally effective at maintaining appropriate boundaries.",
			Development:    "Enhance coaching skills through advanced training. Build expertise in talent assessment. Develop more sophisticated approaches to motivation and engagement.",
		},
		BandMedium: {
			Interpretation: "Demonstrates growing ability in development but may lack consistency. Shows basic understanding of motivation and strength identification. Sometimes struggles with creating effective development plans.",
			Development:    "Build structured approach to development conversations. Practice strength identification techniques. Work on creating more effective development plans.",
		},
		BandMediumLow: {
			Interpretation: "Shows basic understanding of development principles but struggles with implementation. May focus more on weaknesses than strengths. Inconsistent in motivation or boundary-setting.",
			Development:    "Learn fundamental coaching principles. Practice basic motivation assessment. Develop simple but effective development planning skills.",
		},
		BandLow: {
			Interpretation: "Limited understanding of development principles and practices. May struggle with basic coaching or motivation. Needs significant growth in fundamental development skills.",
			Development:    "Start with basic concepts of adult learning and development. Learn fundamental coaching principles. Practice simple strength identification techniques.",
		},
	},
	"team_leadership": {
		BandHigh: {
			Interpretation: "Demonstrates exceptional ability to build and lead high-performing teams. Creates strong collaborative environments where diverse perspectives thrive. Shows sophisticated understanding of team dynamics and motivation. Particularly skilled at breaking down silos and fostering cross-functional cooperation.",
			Development:    "Lead organizational team effectiveness initiatives. Mentor other leaders in team development. Create frameworks for cross-functional collaboration. Share best practices in building collaborative cultures.",
		},
		BandMediumHigh: {
			Interpretation: "Shows strong capability in team leadership and collaboration. Successfully creates positive team environments. Demonstrates good understanding of team dynamics. Generally effective at managing diverse perspectives and breaking down silos.",
			Development:    "Enhance team development skills through advanced training. Build expertise in managing complex team dynamics. Develop more sophisticated approaches to cross-functional collaboration.",
		},
		BandMedium: {
			Interpretation: "Demonstrates growing ability in team leadership but may lack consistency. Shows basic understanding of team dynamics and collaboration. Sometimes struggles with managing diverse perspectives or breaking down silos.",
			Development:    "Build structured approach to team development. Practice inclusive decision-making techniques. Work on developing more effective collaboration strategies.",
		},
		BandMediumLow: {
			Interpretation: "Shows basic understanding of team leadership but struggles with implementation. May focus more on individual than team performance. Inconsistent in creating collaborative environments.",
			Development:    "Learn fundamental team development principles. Practice basic collaboration techniques. Develop simple but effective team-building approaches.",
		},
		BandLow: {
			Interpretation: "Limited understanding of team leadership principles and practices. May struggle with basic team dynamics or collaboration. Needs significant growth in fundamental team leadership skills.",
			Development:    "Start with basic concepts of team dynamics. Learn fundamental collaboration principles. Practice simple team-building techniques.",
		},
	},
	"change_management": {
		BandHigh: {
			Interpretation: "Demonstrates exceptional ability to lead and implement complex change initiatives. Shows sophisticated understanding of change dynamics and resistance patterns. Particularly skilled at pacing and sequencing change while maintaining stakeholder engagement.",
			Development:    "Lead enterprise-wide transformation initiatives. Mentor others in change management. Create frameworks for sustainable change implementation. Share best practices in change leadership.",
		},
		BandMediumHigh: {
			Interpretation: "Shows strong capability in managing change processes. Successfully implements most change initiatives. Demonstrates good understanding of resistance patterns. Generally effective at maintaining stakeholder engagement and ensuring sustainability.",
			Development:    "Enhance change management skills through advanced training. Build expertise in stakeholder engagement. Develop more sophisticated approaches to resistance management.",
		},
		BandMedium: {
			Interpretation: "Demonstrates growing ability in change management but may lack consistency. Shows basic understanding of change principles and resistance. Sometimes struggles with pacing or sustainability.",
			Development:    "Build structured approach to change implementation. Practice resistance management techniques. Work on developing more effective stakeholder engagement strategies.",
		},
		BandMediumLow: {
			Interpretation: "Shows basic understanding of change management but struggles with implementation. May rush implementation or miss key stakeholder concerns. Inconsistent in addressing resistance or ensuring sustainability.",
			Development:    "Learn fundamental change management principles. Practice basic stakeholder engagement techniques. Develop simple but effective change implementation approaches.",
		},
		BandLow: {
			Interpretation: "Limited understanding of change management principles and practices. May struggle with basic change implementation or stakeholder engagement. Needs significant growth in fundamental change management skills.",
			Development:    "Start with basic concepts of change management. Learn fundamental stakeholder engagement principles. Practice simple change implementation techniques.",
		},
	},
	"strategic_influence": {
		BandHigh: {
			Interpretation: "Demonstrates exceptional ability to influence across organizational boundaries. Shows sophisticated understanding of stakeholder management and relationship building. Particularly skilled at creating and leveraging networks while maintaining strong community connections.",
			Development:    "Lead strategic partnership initiatives. Mentor others in stakeholder management. Create frameworks for innovation and future positioning. Share best practices in building influential networks.",
		},
		BandMediumHigh: {
			Interpretation: "Shows strong capability in strategic influence and stakeholder management. Successfully builds and maintains key relationships. Demonstrates good understanding of innovation and future trends. Generally effective at building networks and community connections.",
			Development:    "Enhance stakeholder management skills through advanced training. Build expertise in innovation leadership. Develop more sophisticated approaches to network building.",
		},
		BandMedium: {
			Interpretation: "Demonstrates growing ability in strategic influence but may lack consistency. Shows basic understanding of stakeholder management and networking. Sometimes struggles with innovation or future positioning.",
			Development:    "Build structured approach to stakeholder management. Practice innovation techniques. Work on developing more effective networking strategies.",
		},
		BandMediumLow: {
			Interpretation: "Shows basic understanding of strategic influence but struggles with implementation. May focus more on immediate relationships than strategic ones. Inconsistent in stakeholder management or innovation support.",
			Development:    "Learn fundamental stakeholder management principles. Practice basic networking techniques. Develop simple but effective innovation approaches.",
		},
		BandLow: {
			Interpretation: "Limited understanding of strategic influence principles and practices. May struggle with basic relationship building or stakeholder management. Needs significant growth in fundamental influence skills.",
			Development:    "Start with basic concepts of stakeholder management. Learn fundamental networking principles. Practice simple innovation techniques.",
		},
	},
}
