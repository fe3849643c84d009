// Package transcript turns a call record into a single speaker-tagged
// block of text.
package transcript

import (
	"strings"
	"unicode/utf8"

	"calldesk/internal/vapi"
)

// MinUsableLength is the shortest transcript worth analyzing.
const MinUsableLength = 10

// Source names where a transcript was found.
type Source string

const (
	SourceNone               Source = ""
	SourceArtifactMessages   Source = "artifact.messages"
	SourceMessages           Source = "messages"
	SourceTranscript         Source = "transcript"
	SourceArtifactTranscript Source = "artifact.transcript"
)

// Extract returns the transcript of call. The first populated source wins:
// artifact.messages, messages, transcript, then artifact.transcript. A
// record with none of them yields "".
func Extract(call *vapi.Call) string {
	text, _ := ExtractWithSource(call)
	return text
}

// ExtractWithSource is Extract that also reports which field was used.
func ExtractWithSource(call *vapi.Call) (string, Source) {
	if call == nil {
		return "", SourceNone
	}
	switch {
	case call.Artifact != nil && call.Artifact.Messages != nil:
		return FormatMessages(call.Artifact.Messages), SourceArtifactMessages
	case call.Messages != nil:
		return FormatMessages(call.Messages), SourceMessages
	case call.Transcript != "":
		return call.Transcript, SourceTranscript
	case call.Artifact != nil && call.Artifact.Transcript != "":
		return call.Artifact.Transcript, SourceArtifactTranscript
	}
	return "", SourceNone
}

// FormatMessages renders one "Agent: ..." or "Customer: ..." line per
// message that carries text.
func FormatMessages(msgs []vapi.Message) string {
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		text := m.Text()
		if text == "" {
			continue
		}
		lines = append(lines, speaker(m.Role)+": "+text)
	}
	return strings.Join(lines, "\n")
}

func speaker(role string) string {
	if role == "assistant" || role == "bot" {
		return "Agent"
	}
	return "Customer"
}

// Usable reports whether text is long enough to analyze.
func Usable(text string) bool {
	return utf8.RuneCountInString(text) >= MinUsableLength
}
