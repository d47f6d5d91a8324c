package claudecli

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"cvbuilder/internal/ports"
)

func TestParseSummary(t *testing.T) {
	tests := []struct {
		name    string
		result  string
		want    string
		wantErr bool
	}{
		{
			name:   "plain text",
			result: "  Seasoned engineer with a love for engines.  ",
			want:   "Seasoned engineer with a love for engines.",
		},
		{
			name:   "markdown code block",
			result: "```\nSeasoned engineer.\n```",
			want:   "Seasoned engineer.",
		},
		{
			name:   "code block with language",
			result: "```text\nSeasoned engineer.\n```",
			want:   "Seasoned engineer.",
		},
		{
			name:   "quoted",
			result: `"Seasoned engineer."`,
			want:   "Seasoned engineer.",
		},
		{
			name:    "empty",
			result:  "   ",
			wantErr: true,
		},
		{
			name:    "empty quotes",
			result:  `""`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSummary(tt.result)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSummary() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBuildSummaryPrompt(t *testing.T) {
	tests := []struct {
		name     string
		req      ports.SummaryRequest
		contains []string
	}{
		{
			name: "filled request in Spanish",
			req: ports.SummaryRequest{
				Name:       "Ada",
				Title:      "Analyst",
				Experience: []string{"Engineer at Engines", "Writer at Notes"},
				Skills:     []string{"Math", "Poetry"},
				Language:   "es",
			},
			contains: []string{
				"2-3 sentences in Spanish",
				"Name: Ada",
				"Title: Analyst",
				"Experience: Engineer at Engines, Writer at Notes",
				"Skills: Math, Poetry",
			},
		},
		{
			name: "defaults for missing name and title",
			req:  ports.SummaryRequest{Skills: []string{"Go"}},
			contains: []string{
				"in English",
				"Name: the candidate",
				"Title: a professional",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := buildSummaryPrompt(tt.req)
			for _, want := range tt.contains {
				if !strings.Contains(prompt, want) {
					t.Errorf("prompt missing %q:\n%s", want, prompt)
				}
			}
		})
	}
}

// fakeClaude writes a shell script standing in for the claude binary
func fakeClaude(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stub needs a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "claude")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestGenerateSummary(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		want    string
		wantErr string
	}{
		{
			name:   "success",
			script: `echo '{"type":"result","is_error":false,"result":"A focused engineer."}'`,
			want:   "A focused engineer.",
		},
		{
			name:    "error response",
			script:  `echo '{"type":"result","is_error":true,"result":"rate limited"}'`,
			wantErr: "rate limited",
		},
		{
			name:    "non-zero exit",
			script:  "echo 'not logged in' >&2; exit 1",
			wantErr: "not logged in",
		},
		{
			name:    "garbage output",
			script:  "echo 'hello'",
			wantErr: "failed to parse claude response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAssistant(WithBinary(fakeClaude(t, tt.script)), WithModel("sonnet"))

			got, err := a.GenerateSummary(context.Background(), ports.SummaryRequest{Skills: []string{"Go"}})
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestIsAvailable(t *testing.T) {
	if NewAssistant(WithBinary("definitely-not-a-real-binary-xyz")).IsAvailable() {
		t.Error("expected missing binary to be unavailable")
	}

	a := NewAssistant(WithBinary(fakeClaude(t, "exit 0")))
	if !a.IsAvailable() {
		t.Error("expected stub binary to be available")
	}
}

func TestNewAssistant_Defaults(t *testing.T) {
	a := NewAssistant(WithModel(""), WithBinary(""))
	if a.model != "haiku" || a.binary != "claude" {
		t.Errorf("unexpected defaults: model=%q binary=%q", a.model, a.binary)
	}
}
