package check

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/stackwatch/check-elastic-stack/internal/probe"
)

func runAgainst(t *testing.T, service, endpoint string) *Outcome {
	t.Helper()
	outcome, err := Run(context.Background(), Params{
		Service:  service,
		Endpoint: endpoint,
		User:     "elastic",
		Password: "changeme",
		Timeout:  time.Second,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return outcome
}

func TestRunHealthyCluster(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"green"}`))
	}))
	defer server.Close()

	outcome := runAgainst(t, "elasticsearch", server.URL)
	if outcome.ExitCode != 0 {
		t.Errorf("expected exit code 0, got %d", outcome.ExitCode)
	}
	expected := "OK - Service is up. | service_status=0"
	if outcome.Line != expected {
		t.Errorf("expected %q, got %q", expected, outcome.Line)
	}
}

func TestRunConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	outcome := runAgainst(t, "elasticsearch", endpoint)
	if outcome.ExitCode != 3 {
		t.Errorf("expected exit code 3, got %d", outcome.ExitCode)
	}
	expected := "UNKNOWN - Unable to connect to the service. | service_status=3"
	if outcome.Line != expected {
		t.Errorf("expected %q, got %q", expected, outcome.Line)
	}
}

func TestRunOverrideMessages(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		expected string
	}{
		{
			name: "authentication",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			expected: "UNKNOWN - Authentication failed for the service. | service_status=3",
		},
		{
			name: "http status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expected: "UNKNOWN - An HTTP status error occurred. | service_status=3",
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(200 * time.Millisecond)
			},
			expected: "UNKNOWN - Service request timed out. | service_status=3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			outcome, err := Run(context.Background(), Params{
				Service:  "elasticsearch",
				Endpoint: server.URL,
				User:     "elastic",
				Password: "changeme",
				Timeout:  50 * time.Millisecond,
			}, zap.NewNop())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if outcome.Line != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, outcome.Line)
			}
			if outcome.ExitCode != 3 {
				t.Errorf("expected exit code 3, got %d", outcome.ExitCode)
			}
		})
	}
}

func TestRunDomainErrorKeepsDefaultMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"blue"}`))
	}))
	defer server.Close()

	outcome := runAgainst(t, "elasticsearch", server.URL)
	expected := "UNKNOWN - Service state is unknown, please check the configuration or logs. | service_status=3"
	if outcome.Line != expected {
		t.Errorf("expected %q, got %q", expected, outcome.Line)
	}
}

func TestRunCaseInsensitiveService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"yellow"}`))
	}))
	defer server.Close()

	outcome := runAgainst(t, "ELASTICSEARCH", server.URL)
	if outcome.Severity != probe.SeverityWarning {
		t.Errorf("expected WARNING, got %v", outcome.Severity)
	}
	if outcome.ExitCode != 1 {
		t.Errorf("expected exit code 1, got %d", outcome.ExitCode)
	}
}

func TestRunUnknownService(t *testing.T) {
	_, err := Run(context.Background(), Params{
		Service:  "bogus",
		Endpoint: "http://localhost:1",
		User:     "u",
		Password: "p",
	}, zap.NewNop())
	if err == nil {
		t.Fatal("expected an error for an unknown service")
	}
	kind, ok := probe.KindOf(err)
	if !ok || kind != probe.KindNotFound {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestRunIdempotent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"process":{"cpu":{"percent":90}}}`))
	}))
	defer server.Close()

	first := runAgainst(t, "logstash", server.URL)
	second := runAgainst(t, "logstash", server.URL)
	if first.Line != second.Line || first.ExitCode != second.ExitCode {
		t.Errorf("repeated runs differ: %+v vs %+v", first, second)
	}
	if first.Severity != probe.SeverityCritical {
		t.Errorf("expected CRITICAL at 90%% cpu, got %v", first.Severity)
	}
}
