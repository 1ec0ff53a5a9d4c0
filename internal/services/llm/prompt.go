package llm

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EntryPrompt captures the instructions sent to the configured model when
// converting dictation into a backlog entry. Update this text centrally so
// every call stays in sync.
const EntryPrompt = `You are a senior developer assisting in backlog grooming.

Given a raw dictation line, respond with ONLY valid JSON matching this schema:
{
  "title": str,        5-6 word git-style imperative
  "difficulty": int,   1-5 per rubric below
  "description": str,  cleaned full text
  "timestamp": str     ISO-8601 in UTC
}

Rules:
- Use these good title examples as style reference: Add OAuth login flow; Refactor payment adapter module; Improve CSV import performance.
- Difficulty rubric: 1 = Tiny tweak (<=30 min); 2 = Small feature (<=2 h); 3 = Medium feature (<=1 day); 4 = Large feature (1-3 days); 5 = Complex new module (>3 days)
- Do not add fields. Reply with JSON only.`

// RefinePrompt instructs the model to apply edit instructions to an
// existing entry while keeping the same schema.
const RefinePrompt = `You are a senior developer assisting in backlog grooming.

You will receive an existing backlog entry as JSON plus edit instructions.
Apply the instructions and respond with ONLY the updated JSON object using
the same four fields: title (5-6 word git-style imperative), difficulty
(int 1-5), description (str), timestamp (str, ISO-8601 in UTC). Keep any
field the instructions do not mention unchanged. Do not add fields.`

const projectContextChars = 200

// BuildSystemPrompt assembles the system prompt for entry extraction. A
// non-empty override file replaces the embedded prompt wholesale. When a
// README exists in contextDir, a short project-context section is inserted
// after the prompt's first line so titles match the project's vocabulary.
func BuildSystemPrompt(overridePath, contextDir string) string {
	prompt := EntryPrompt
	if overridePath != "" {
		if data, err := os.ReadFile(overridePath); err == nil {
			if text := strings.TrimSpace(string(data)); text != "" {
				prompt = text
			}
		}
	}

	context := projectContext(contextDir)
	if context == "" {
		return prompt
	}

	section := fmt.Sprintf("Project context (extracted from README):\n%s", context)
	first, rest, found := strings.Cut(prompt, "\n")
	if !found {
		return prompt + "\n\n" + section
	}
	return first + "\n\n" + section + "\n" + rest
}

// projectContext extracts the title line and first paragraph of a local
// README.md, bounded to a couple hundred characters.
func projectContext(dir string) string {
	if dir == "" {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(dir, "README.md"))
	if err != nil {
		return ""
	}

	var title string
	var paragraph []string
	inParagraph := false
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case title == "" && strings.HasPrefix(line, "#"):
			title = line
		case line == "" && inParagraph:
			inParagraph = false
		case line != "" && !strings.HasPrefix(line, "#") && (inParagraph || len(paragraph) == 0):
			paragraph = append(paragraph, line)
			inParagraph = true
		}
		if title != "" && len(paragraph) > 0 && !inParagraph {
			break
		}
	}

	result := strings.TrimSpace(title + "\n" + strings.Join(paragraph, " "))
	if result == "" {
		return ""
	}
	runes := []rune(result)
	if len(runes) > projectContextChars {
		result = string(runes[:projectContextChars-3]) + "..."
	}
	return result
}
