package parser

import (
	"encoding/json"
	"regexp"
	"strings"

	"tripfolio/internal/domain"
)

// Models sometimes wrap structured output in markdown code fences despite
// being told not to. Strip them before attempting to decode.
var (
	jsonFenceRe = regexp.MustCompile("```json\n?")
	fenceRe     = regexp.MustCompile("```\n?")
)

// Outcome is the tagged result of normalizing a model answer: either a
// decoded Booking (Parsed true) or the cleaned raw text for manual review
// (Parsed false). The two shapes never mix.
type Outcome struct {
	Parsed  bool
	Booking *domain.Booking
	Raw     string
}

// StripFences removes markdown code-fence artifacts and surrounding
// whitespace from a model answer.
func StripFences(text string) string {
	cleaned := jsonFenceRe.ReplaceAllString(text, "")
	cleaned = fenceRe.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// Normalize turns raw model output into an Outcome. It is a pure function:
// no I/O, deterministic for identical input. Decode failure is not an
// error; the cleaned text is returned verbatim for the caller to display.
func Normalize(text string) Outcome {
	cleaned := StripFences(text)

	var booking domain.Booking
	if err := json.Unmarshal([]byte(cleaned), &booking); err != nil {
		return Outcome{Parsed: false, Raw: cleaned}
	}
	return Outcome{Parsed: true, Booking: &booking}
}
