package catalog

import (
	"fmt"
	"strings"
)

// ParseSkill resolves a user-supplied skill name case-insensitively, also
// accepting hyphens for spaces ("critical-thinking").
func ParseSkill(name string) (Skill, error) {
	want := strings.ToLower(strings.ReplaceAll(name, "-", " "))
	for _, s := range AllSkills() {
		if strings.ToLower(string(s)) == want {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown skill %q", name)
}

// ParseLevel resolves a user-supplied level name case-insensitively.
func ParseLevel(name string) (Level, error) {
	want := strings.ToLower(name)
	for _, l := range AllLevels() {
		if strings.ToLower(string(l)) == want {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown level %q", name)
}

// ParseModality resolves a user-supplied question type case-insensitively.
func ParseModality(name string) (Modality, error) {
	want := strings.ToLower(name)
	for _, m := range AllModalities() {
		if strings.ToLower(string(m)) == want {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown question type %q", name)
}
