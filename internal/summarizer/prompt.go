package summarizer

import (
	"errors"
	"fmt"
)

// ErrEmptySummary is returned when the provider answers without any text.
var ErrEmptySummary = errors.New("empty summary from provider")

// Params are the generation settings shared by every provider.
type Params struct {
	Model       string
	MaxTokens   int
	Temperature float32
}

const systemInstruction = `You are an expert at summarizing transcripts. In the given transcript, I want you to produce a detailed report that meets these requirements:
+ A quick summary of the meeting/ lecture
+ What should be done (there should be at least 5 points)
+ Key date and deadlines (if any)

It must strictly follow this format, with exactly one blank line between the three sections and no blank lines inside a section:
Summary: 5-10 sentences

What Should Be Done:
- Complete the pending documentation.
- Review the code changes.
- Plan the next sprint.
- Organize a team meeting for review.
- Assign new tasks for next sprint.

Upcoming Tasks and Deadlines:
- Documentation Update: March 18, 2024
- Code Review: March 20, 2024
- Sprint Planning: March 22, 2024`

func userMessage(transcript string) string {
	return fmt.Sprintf("Summarize the content of this transcript from a meeting:\n\n%s\n\n", transcript)
}
