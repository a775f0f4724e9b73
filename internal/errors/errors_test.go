package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestGetSuggestion(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"scene", fmt.Errorf("resize 7: %w", ErrSceneNotFound), "cutline status"},
		{"empty", ErrEmptyTimeline, "Add a scene"},
		{"edit", fmt.Errorf("bogus: %w", ErrInvalidEdit), "cutline edit --help"},
		{"config missing", ErrConfigNotFound, "cutline config init"},
		{"config invalid", fmt.Errorf("timeline: %w", ErrInvalidConfig), "cutline config show"},
		{"explicit", WithSuggestion(errors.New("boom"), "try again"), "try again"},
		{"unknown", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetSuggestion(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("GetSuggestion() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("GetSuggestion() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestWithSuggestionUnwraps(t *testing.T) {
	err := WithSuggestion(ErrSceneNotFound, "look elsewhere")
	if !errors.Is(err, ErrSceneNotFound) {
		t.Error("errors.Is(err, ErrSceneNotFound) = false, want true")
	}
}

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}

	got := Format(ErrEmptyTimeline)
	if !strings.HasPrefix(got, "Error: timeline is empty") {
		t.Errorf("Format() = %q, want Error: prefix", got)
	}
	if !strings.Contains(got, "Suggestion:") {
		t.Errorf("Format() = %q, want a suggestion", got)
	}

	if got := Format(errors.New("plain")); got != "Error: plain" {
		t.Errorf("Format() = %q, want %q", got, "Error: plain")
	}
}
