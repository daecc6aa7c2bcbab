// Package catalog holds the fixed set of assessable soft skills, difficulty
// levels, and media modalities the rest of the pipeline works with.
package catalog

// Skill is a named soft-skill competency being assessed.
type Skill string

const (
	SkillCommunication         Skill = "Communication"
	SkillLeadership            Skill = "Leadership"
	SkillCriticalThinking      Skill = "Critical Thinking"
	SkillProblemSolving        Skill = "Problem Solving"
	SkillTeamwork              Skill = "Teamwork"
	SkillTimeManagement        Skill = "Time Management"
	SkillAdaptability          Skill = "Adaptability"
	SkillEmotionalIntelligence Skill = "Emotional Intelligence"
	SkillCreativity            Skill = "Creativity"
	SkillDecisionMaking        Skill = "Decision Making"
	SkillConflictResolution    Skill = "Conflict Resolution"
	SkillNegotiation           Skill = "Negotiation"
)

// AllSkills returns the skill catalog in display order.
func AllSkills() []Skill {
	return []Skill{
		SkillCommunication,
		SkillLeadership,
		SkillCriticalThinking,
		SkillProblemSolving,
		SkillTeamwork,
		SkillTimeManagement,
		SkillAdaptability,
		SkillEmotionalIntelligence,
		SkillCreativity,
		SkillDecisionMaking,
		SkillConflictResolution,
		SkillNegotiation,
	}
}

// ValidSkill reports whether s is in the catalog.
func ValidSkill(s Skill) bool {
	for _, known := range AllSkills() {
		if s == known {
			return true
		}
	}
	return false
}

// Level is a difficulty tier. Ordinal, but treated as an opaque label: it
// only parameterizes prompts and keys the fallback question table.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// AllLevels returns the levels from easiest to hardest.
func AllLevels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// ValidLevel reports whether l is a known level.
func ValidLevel(l Level) bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Modality is the medium of a question or answer. It selects the prompt
// template on the question side and the textualization path on the answer
// side.
type Modality string

const (
	ModalityText  Modality = "Text"
	ModalityAudio Modality = "Audio"
	ModalityImage Modality = "Image"
)

// AllModalities returns the supported question/answer modalities.
func AllModalities() []Modality {
	return []Modality{ModalityText, ModalityAudio, ModalityImage}
}

// ValidModality reports whether m is a supported modality.
func ValidModality(m Modality) bool {
	switch m {
	case ModalityText, ModalityAudio, ModalityImage:
		return true
	}
	return false
}
