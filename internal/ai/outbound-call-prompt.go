package ai

import "calldesk/internal/prompt"

type templateKey struct {
	scenarioID string
	language   prompt.Language
}

// outboundTemplates holds the agent instructions for the built-in
// scenarios. English and Arabic are written separately because dialect
// and tone differ, so editing one does not update the other.
var outboundTemplates = map[templateKey]string{
	{"payment-reminder", prompt.English}:  paymentReminderEN,
	{"account-inquiry", prompt.English}:   accountInquiryEN,
	{"service-upgrade", prompt.English}:   serviceUpgradeEN,
	{"technical-support", prompt.English}: technicalSupportEN,

	{"payment-reminder", prompt.Arabic}:  paymentReminderAR,
	{"account-inquiry", prompt.Arabic}:   accountInquiryAR,
	{"service-upgrade", prompt.Arabic}:   serviceUpgradeAR,
	{"technical-support", prompt.Arabic}: technicalSupportAR,
}

// OutboundCallTemplate returns the built-in agent template for a scenario
// in the given language.
func OutboundCallTemplate(scenarioID string, lang prompt.Language) (string, bool) {
	t, ok := outboundTemplates[templateKey{scenarioID, lang}]
	return t, ok
}

// OutboundCallLanguages lists the languages that have a template for
// scenarioID.
func OutboundCallLanguages(scenarioID string) []prompt.Language {
	var langs []prompt.Language
	for _, l := range []prompt.Language{prompt.English, prompt.Arabic} {
		if _, ok := outboundTemplates[templateKey{scenarioID, l}]; ok {
			langs = append(langs, l)
		}
	}
	return langs
}
