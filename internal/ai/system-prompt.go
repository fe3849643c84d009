package ai

// GetAnalystSystemPrompt is the system message for transcript analysis.
func GetAnalystSystemPrompt() string {
	return "You are an expert call center quality analyst. Analyze call transcripts and provide detailed, structured reports in JSON format."
}

// GetAuthoringSystemPrompt is the system message for scenario prompt
// generation.
func GetAuthoringSystemPrompt() string {
	return "You are an expert at creating professional call center agent prompts for STC (Saudi Telecom Company)."
}
