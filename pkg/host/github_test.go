package host

import (
	"context"
	"testing"

	"github.com/cicd-ai-toolkit/diffscope/pkg/errors"
)

func TestPRInfoRejectsInvalidInput(t *testing.T) {
	client := NewGitHubClient("")
	ctx := context.Background()

	tests := []struct {
		name   string
		slug   string
		number int
	}{
		{"no separator", "organization", 1},
		{"empty owner", "/repository", 1},
		{"empty repo", "organization/", 1},
		{"empty slug", "", 1},
		{"zero number", "organization/repository", 0},
		{"negative number", "organization/repository", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.PRInfo(ctx, tt.slug, tt.number)
			if !errors.IsKind(err, errors.KindValidation) {
				t.Errorf("PRInfo(%q, %d) error = %v, want validation error", tt.slug, tt.number, err)
			}
		})
	}
}

func TestSetBaseURL(t *testing.T) {
	client := NewGitHubClient("token")

	if err := client.SetBaseURL("https://github.example.com/api/v3"); err != nil {
		t.Fatalf("SetBaseURL() error = %v", err)
	}
	if got := client.client.BaseURL.String(); got != "https://github.example.com/api/v3/" {
		t.Errorf("BaseURL = %q, want trailing slash preserved", got)
	}
}

func TestNewGitHubClientWithoutToken(t *testing.T) {
	client := NewGitHubClient("")
	if client.client == nil {
		t.Fatal("expected a usable unauthenticated client")
	}
}
