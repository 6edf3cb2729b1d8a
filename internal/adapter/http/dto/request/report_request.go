package request

import "strings"

// ReportPromptRequest is the payload for the text-prompt report routes
// (interpretar-prompt and generar-dinamico).
type ReportPromptRequest struct {
	Prompt string `json:"prompt"`
}

func (r ReportPromptRequest) ResolvePrompt() string {
	return strings.TrimSpace(r.Prompt)
}

// VoiceReportRequest is the payload for generar-por-voz: the text transcribed
// from the user's voice command by the front end.
type VoiceReportRequest struct {
	VoiceText string `json:"texto_voz"`
}

func (r VoiceReportRequest) ResolvePrompt() string {
	return strings.TrimSpace(r.VoiceText)
}
