package callconfig

import (
	"calldesk/internal/prompt"
	"calldesk/internal/vapi"
)

// profile is one row of the per-language voice, transcription and model
// table.
type profile struct {
	voiceProvider   string
	voiceID         string
	voiceModel      string
	stability       *float64
	similarityBoost *float64
	style           *float64
	speakerBoost    *bool

	transcriberProvider string
	transcriberModel    string
	transcriberLocale   string

	modelProvider string
	model         string
	temperature   float64
}

var profiles = map[prompt.Language]profile{
	prompt.English: {
		voiceProvider:       "vapi",
		voiceID:             "Elliot",
		transcriberProvider: "deepgram",
		transcriberModel:    "nova-2",
		transcriberLocale:   "en",
		modelProvider:       "openai",
		model:               "gpt-4o",
		temperature:         0.7,
	},
	// Gulf Arabic female voice on ElevenLabs, Bahrain locale for the Gulf dialect.
	prompt.Arabic: {
		voiceProvider:       "11labs",
		voiceID:             "4wf10lgibMnboGJGCLrP",
		voiceModel:          "eleven_multilingual_v2",
		stability:           floatPtr(0.5),
		similarityBoost:     floatPtr(0.75),
		style:               floatPtr(0),
		speakerBoost:        boolPtr(true),
		transcriberProvider: "azure",
		transcriberLocale:   "ar-BH",
		modelProvider:       "openai",
		model:               "gpt-4o",
		temperature:         0.7,
	},
}

func profileFor(lang prompt.Language) profile {
	if p, ok := profiles[lang]; ok {
		return p
	}
	return profiles[prompt.English]
}

func (p profile) voice() *vapi.Voice {
	return &vapi.Voice{
		Provider:        p.voiceProvider,
		VoiceID:         p.voiceID,
		Model:           p.voiceModel,
		Stability:       p.stability,
		SimilarityBoost: p.similarityBoost,
		Style:           p.style,
		UseSpeakerBoost: p.speakerBoost,
	}
}

func (p profile) transcriber() *vapi.Transcriber {
	return &vapi.Transcriber{
		Provider: p.transcriberProvider,
		Model:    p.transcriberModel,
		Language: p.transcriberLocale,
	}
}

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool         { return &b }
