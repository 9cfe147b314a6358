package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/api"
	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/push"
)

func intPtr(v int) *int { return &v }

func newTestSession(t *testing.T, cfg Config, handler http.HandlerFunc) (*Session, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(cfg, api.NewClient(srv.URL, ""), zerolog.Nop()), srv
}

func TestSession_HandleEventRouting(t *testing.T) {
	s := New(Config{SyncCheckSeconds: 30}, nil, zerolog.Nop())

	s.HandleEvent(push.LogEvent{Kind: push.TagFillStart, Message: "New app detected."})
	s.HandleEvent(push.LogEvent{Kind: push.TagFillLog, Message: "filled row 1"})
	s.HandleEvent(push.MetaEvent{NextInSeconds: intPtr(90), EntryText: "entry-5"})

	if got := s.LogCount(); got != 2 {
		t.Errorf("LogCount() = %d, want 2", got)
	}
	lines := s.LogLines()
	if lines[0] != "New app detected." || lines[1] != "filled row 1" {
		t.Errorf("LogLines() = %v", lines)
	}
	if got := s.AutoFillLabel(); got != "Next auto-fill in 90s" {
		t.Errorf("AutoFillLabel() = %q", got)
	}
	if got := s.AutoFillEntry(); got != "entry-5" {
		t.Errorf("AutoFillEntry() = %q", got)
	}
}

func TestSession_MetaOverwritesLocalCountdown(t *testing.T) {
	s := New(Config{InitialAutoFillSeconds: 100}, nil, zerolog.Nop())

	s.TickSecond()
	s.TickSecond()
	s.HandleEvent(push.MetaEvent{NextInSeconds: intPtr(7)})

	if got := s.AutoFillLabel(); got != "Next auto-fill in 7s" {
		t.Errorf("AutoFillLabel() = %q, want authoritative overwrite", got)
	}
}

func TestSession_PausedMetaSuspendsCountdown(t *testing.T) {
	s := New(Config{InitialAutoFillSeconds: 100}, nil, zerolog.Nop())

	s.HandleEvent(push.MetaEvent{NextInSeconds: nil, Status: "paused"})
	s.TickSecond()
	s.TickSecond()

	if got := s.AutoFillLabel(); got != "Automation paused" {
		t.Errorf("AutoFillLabel() = %q, want Automation paused", got)
	}
}

func TestSession_TickSecondReportsLeaderboardDue(t *testing.T) {
	s := New(Config{SyncCheckSeconds: 2}, nil, zerolog.Nop())

	due := 0
	for i := 0; i < 3; i++ {
		if s.TickSecond() {
			due++
		}
	}

	if due != 1 {
		t.Errorf("leaderboard refreshes due = %d, want 1 per wrap", due)
	}
	if got := s.SyncCheckLabel(); got != "Next sync check in 2s" {
		t.Errorf("SyncCheckLabel() after wrap = %q", got)
	}
}

func TestSession_SubmitEmptyInputMakesNoNetworkCall(t *testing.T) {
	var calls atomic.Int64
	s, _ := newTestSession(t, Config{}, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	tests := []struct {
		name      string
		inputName string
		inputURL  string
	}{
		{"empty name", "", "http://app.example"},
		{"empty url", "alice", ""},
		{"whitespace only", "   ", "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := s.Submit(context.Background(), tt.inputName, tt.inputURL)
			if out.OK {
				t.Error("OK = true, want validation failure")
			}
			if out.Status != "Please provide your name and app URL." {
				t.Errorf("Status = %q", out.Status)
			}
		})
	}

	if calls.Load() != 0 {
		t.Errorf("network calls = %d, want 0", calls.Load())
	}
}

func TestSession_SubmitSuccessWithComparison(t *testing.T) {
	s, _ := newTestSession(t, Config{Lab: "lab-3", CompareEnabled: true}, func(w http.ResponseWriter, r *http.Request) {
		var req api.CompareRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Lab != "lab-3" {
			t.Errorf("lab = %q, want active lab", req.Lab)
		}
		json.NewEncoder(w).Encode(api.CompareResult{
			Name:           "alice",
			CompareEnabled: true,
			Status:         api.StatusMatch,
			ElapsedMS:      120,
			Results:        []api.EndpointResult{{Endpoint: "/api/items", Status: api.StatusMatch}},
		})
	})

	out := s.Submit(context.Background(), " alice ", " http://app.example ")

	if !out.OK {
		t.Fatalf("OK = false, Status = %q", out.Status)
	}
	if out.Status != "Comparison complete for alice." {
		t.Errorf("Status = %q", out.Status)
	}
	if out.Result == nil || len(out.Result.Results) != 1 {
		t.Errorf("Result = %+v, want full result panel", out.Result)
	}
	if !out.RefreshDue {
		t.Error("RefreshDue = false, want refresh after success")
	}
}

func TestSession_SubmitAcknowledgmentWhenCompareDisabled(t *testing.T) {
	tests := []struct {
		name          string
		clientEnabled bool
		serverEnabled bool
	}{
		{"client disabled", false, true},
		{"server disabled", true, false},
		{"both disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t, Config{CompareEnabled: tt.clientEnabled}, func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(api.CompareResult{
					Name:           "bob",
					CompareEnabled: tt.serverEnabled,
					Status:         api.StatusMatch,
				})
			})

			out := s.Submit(context.Background(), "bob", "http://app.example")
			if !out.OK {
				t.Fatalf("OK = false, Status = %q", out.Status)
			}
			if out.Status != "Submission saved for bob." {
				t.Errorf("Status = %q", out.Status)
			}
			if out.Result != nil {
				t.Error("Result != nil, want acknowledgment without result panel")
			}
			if !out.RefreshDue {
				t.Error("RefreshDue = false, want refresh on both success paths")
			}
		})
	}
}

func TestSession_SubmitFormLabOverride(t *testing.T) {
	s, _ := newTestSession(t, Config{Lab: "lab-3", FormLab: "lab-9"}, func(w http.ResponseWriter, r *http.Request) {
		var req api.CompareRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Lab != "lab-9" {
			t.Errorf("lab = %q, want form override", req.Lab)
		}
		json.NewEncoder(w).Encode(api.CompareResult{Name: "alice"})
	})

	s.Submit(context.Background(), "alice", "http://app.example")
}

func TestSession_SubmitErrorMessages(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus string
	}{
		{
			name: "server message",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(map[string]string{"error": "Target app unreachable."})
			},
			wantStatus: "Target app unreachable.",
		},
		{
			name: "server failure without message",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: "Unable to compare.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t, Config{}, tt.handler)
			out := s.Submit(context.Background(), "alice", "http://app.example")
			if out.OK {
				t.Error("OK = true, want failure")
			}
			if out.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", out.Status, tt.wantStatus)
			}
			if out.Result != nil || out.RefreshDue {
				t.Error("failure must not render results or trigger refreshes")
			}
		})
	}
}

func TestSession_SubmitNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	s := New(Config{}, api.NewClient(srv.URL, ""), zerolog.Nop())

	out := s.Submit(context.Background(), "alice", "http://app.example")
	if out.Status != "Something went wrong." {
		t.Errorf("Status = %q", out.Status)
	}
	if s.Submitting() {
		t.Error("Submitting() = true after failed submission, want re-enabled control")
	}
}

func TestSession_RefreshFailureKeepsPreviousSnapshot(t *testing.T) {
	fail := false
	s, _ := newTestSession(t, Config{Lab: "lab-1"}, func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		switch r.URL.Path {
		case "/api/students":
			json.NewEncoder(w).Encode(map[string]any{
				"students": []api.Student{{Name: "alice", URL: "http://a"}},
			})
		case "/api/leaderboard":
			json.NewEncoder(w).Encode(map[string]any{
				"leaderboard": []api.LeaderboardEntry{{Name: "alice", URL: "http://a"}},
			})
		}
	})

	if err := s.RefreshStudents(context.Background()); err != nil {
		t.Fatalf("RefreshStudents() error = %v", err)
	}
	if err := s.RefreshLeaderboard(context.Background()); err != nil {
		t.Fatalf("RefreshLeaderboard() error = %v", err)
	}

	fail = true
	if err := s.RefreshStudents(context.Background()); err == nil {
		t.Error("RefreshStudents() error = nil, want failure")
	}
	if err := s.RefreshLeaderboard(context.Background()); err == nil {
		t.Error("RefreshLeaderboard() error = nil, want failure")
	}

	if len(s.Students()) != 1 || s.Students()[0].Name != "alice" {
		t.Errorf("Students() = %+v, want previous snapshot kept", s.Students())
	}
	if len(s.Leaderboard()) != 1 {
		t.Errorf("Leaderboard() = %+v, want previous snapshot kept", s.Leaderboard())
	}
}

func TestSession_RefreshReplacesWholeList(t *testing.T) {
	second := false
	s, _ := newTestSession(t, Config{}, func(w http.ResponseWriter, r *http.Request) {
		students := []api.Student{{Name: "alice", URL: "http://a"}, {Name: "bob", URL: "http://b"}}
		if second {
			students = []api.Student{{Name: "carol", URL: "http://c"}}
		}
		json.NewEncoder(w).Encode(map[string]any{"students": students})
	})

	s.RefreshStudents(context.Background())
	second = true
	s.RefreshStudents(context.Background())

	got := s.Students()
	if len(got) != 1 || got[0].Name != "carol" {
		t.Errorf("Students() = %+v, want full replacement", got)
	}
}
