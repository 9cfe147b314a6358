package session

import (
	"testing"

	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/api"
)

func boolPtr(v bool) *bool { return &v }

func TestCardText(t *testing.T) {
	tests := []struct {
		name   string
		result api.EndpointResult
		want   string
	}{
		{
			name:   "match",
			result: api.EndpointResult{Endpoint: "/api/items", Status: api.StatusMatch},
			want:   "Payload matches baseline.",
		},
		{
			name: "error with both sides",
			result: api.EndpointResult{
				Status:        api.StatusError,
				BaselineError: "timeout",
				TargetError:   "500",
			},
			want: "Baseline: timeout | Target: 500",
		},
		{
			name:   "error defaults to ok",
			result: api.EndpointResult{Status: api.StatusError, TargetError: "refused"},
			want:   "Baseline: ok | Target: refused",
		},
		{
			name: "row counts when missing_count present",
			result: api.EndpointResult{
				Status:       api.StatusDiff,
				MissingCount: intPtr(3),
				ExtraCount:   intPtr(1),
			},
			want: "Missing rows: 3 | Extra rows: 1",
		},
		{
			name:   "zero missing count still selects row form",
			result: api.EndpointResult{Status: api.StatusDiff, MissingCount: intPtr(0), ExtraCount: intPtr(0)},
			want:   "Missing rows: 0 | Extra rows: 0",
		},
		{
			name:   "generic difference",
			result: api.EndpointResult{Status: api.StatusDiff},
			want:   "Payload differs from baseline.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CardText(tt.result); got != tt.want {
				t.Errorf("CardText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummaryText(t *testing.T) {
	if got := SummaryText(api.StatusMatch); got != "All endpoints match the baseline." {
		t.Errorf("SummaryText(match) = %q", got)
	}
	if got := SummaryText("mismatch"); got != "Differences detected. Review endpoint details." {
		t.Errorf("SummaryText(mismatch) = %q", got)
	}
}

func TestSyncLabel(t *testing.T) {
	tests := []struct {
		name string
		sync *bool
		want string
	}{
		{"in sync", boolPtr(true), "In sync"},
		{"out of sync", boolPtr(false), "Out of sync"},
		{"unknown", nil, "Pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SyncLabel(tt.sync); got != tt.want {
				t.Errorf("SyncLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEntryName(t *testing.T) {
	if got := EntryName(api.LeaderboardEntry{URL: "http://a"}); got != "Unknown" {
		t.Errorf("EntryName() = %q, want Unknown", got)
	}
	if got := EntryName(api.LeaderboardEntry{Name: "alice"}); got != "alice" {
		t.Errorf("EntryName() = %q", got)
	}
}

func TestElapsedText(t *testing.T) {
	if got := ElapsedText(245); got != "Completed in 245 ms" {
		t.Errorf("ElapsedText() = %q", got)
	}
}
