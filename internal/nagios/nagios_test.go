package nagios

import (
	"testing"

	"github.com/stackwatch/check-elastic-stack/internal/probe"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		severity probe.Severity
		expected State
	}{
		{probe.SeverityOK, Ok},
		{probe.SeverityWarning, Warn},
		{probe.SeverityCritical, Critical},
		{probe.SeverityUnknown, Unknown},
		{probe.Severity(99), Unknown},
		{probe.Severity(-1), Unknown},
	}

	for _, tt := range tests {
		if got := Evaluate(tt.severity); got != tt.expected {
			t.Errorf("Evaluate(%d) = %v, expected %v", tt.severity, got, tt.expected)
		}
	}
}

func TestDescribeDefaults(t *testing.T) {
	tests := []struct {
		severity probe.Severity
		expected string
	}{
		{probe.SeverityOK, "Service is up."},
		{probe.SeverityWarning, "Potential issue detected, investigate soon."},
		{probe.SeverityCritical, "Service is in a critical state. Action needed immediately!"},
		{probe.SeverityUnknown, "Service state is unknown, please check the configuration or logs."},
		{probe.Severity(99), "No status available"},
	}

	for _, tt := range tests {
		if got := Describe(tt.severity, ""); got != tt.expected {
			t.Errorf("Describe(%d) = %q, expected %q", tt.severity, got, tt.expected)
		}
	}
}

func TestDescribeOverride(t *testing.T) {
	override := "Unable to connect to the service."
	if got := Describe(probe.SeverityUnknown, override); got != override {
		t.Errorf("expected override returned verbatim, got %q", got)
	}
}

func TestPerformance(t *testing.T) {
	tests := []struct {
		severity probe.Severity
		expected string
	}{
		{probe.SeverityOK, "service_status=0"},
		{probe.SeverityWarning, "service_status=1"},
		{probe.SeverityCritical, "service_status=2"},
		{probe.SeverityUnknown, "service_status=3"},
	}

	for _, tt := range tests {
		if got := Performance(tt.severity); got != tt.expected {
			t.Errorf("Performance(%d) = %q, expected %q", tt.severity, got, tt.expected)
		}
	}
}

func TestReport(t *testing.T) {
	got := Report(probe.SeverityOK, "")
	expected := "OK - Service is up. | service_status=0"
	if got != expected {
		t.Errorf("Report = %q, expected %q", got, expected)
	}

	got = Report(probe.SeverityUnknown, "Service request timed out.")
	expected = "UNKNOWN - Service request timed out. | service_status=3"
	if got != expected {
		t.Errorf("Report with override = %q, expected %q", got, expected)
	}
}
