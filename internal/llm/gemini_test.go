package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiContents(t *testing.T) {
	got := buildGeminiContents([]Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(got))
	}
	if got[0].Role != "user" || got[1].Role != "model" {
		t.Fatalf("unexpected roles: %q, %q", got[0].Role, got[1].Role)
	}
	if got[1].Parts[0].Text != "hello" {
		t.Fatalf("unexpected text: %q", got[1].Parts[0].Text)
	}
}

func TestGeminiReply(t *testing.T) {
	p := &GeminiProvider{model: "gemini-2.5-flash"}
	result := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: ""},
				{Text: "# 미션"},
				{Text: "extra"},
			}},
			FinishReason: genai.FinishReasonMaxTokens,
		}},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     12,
			CandidatesTokenCount: 30,
			TotalTokenCount:      42,
		},
	}

	resp, err := p.toReply(result).response()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "# 미션" {
		t.Fatalf("text = %q", resp.Text)
	}
	if !resp.Truncated() {
		t.Fatalf("stop reason = %q, want truncated", resp.StopReason)
	}
	if resp.Model != "gemini-2.5-flash" || resp.Usage.TotalTokens != 42 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if _, err := p.toReply(&genai.GenerateContentResponse{}).response(); err == nil {
		t.Fatal("expected error for no candidates")
	}
}
