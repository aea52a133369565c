package animation

import "strings"

const promptTemplate = "Generate detailed and extensive Manim code based on the following user query. " +
	"Do not include any comments or explanations in the code. User query: "

var fenceReplacer = strings.NewReplacer("```python", "", "```", "")

// prepends the fixed instruction template to the user's prompt
func DecoratePrompt(prompt string) string {
	return promptTemplate + prompt
}

// strips code fence markers and surrounding whitespace
func SanitizeCode(code string) string {
	return strings.TrimSpace(fenceReplacer.Replace(code))
}
