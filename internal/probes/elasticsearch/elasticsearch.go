// Package elasticsearch provides the cluster health probe.
package elasticsearch

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/stackwatch/check-elastic-stack/internal/driver"
	"github.com/stackwatch/check-elastic-stack/internal/probe"
)

// Name is the registered service name.
const Name = "elasticsearch"

const statusPath = "/_health_report"

// healthStatuses is the closed vocabulary the cluster reports. Anything
// outside it is an error, not a silent default.
var healthStatuses = map[string]probe.Severity{
	"green":   probe.SeverityOK,
	"yellow":  probe.SeverityWarning,
	"red":     probe.SeverityCritical,
	"unknown": probe.SeverityUnknown,
}

// GetDescription returns the probe description.
func GetDescription() probe.Description {
	return probe.Description{
		Name:        Name,
		Description: "Elasticsearch cluster health (green/yellow/red)",
		StatusPath:  statusPath,
	}
}

// Probe checks the cluster health report endpoint.
type Probe struct {
	creds  probe.Credentials
	driver *driver.Driver
	log    *zap.Logger
}

// New creates the cluster probe.
func New(creds probe.Credentials, d *driver.Driver, log *zap.Logger) *Probe {
	return &Probe{creds: creds, driver: d, log: log}
}

func (p *Probe) Name() string {
	return Name
}

// GetStatus fetches the health report and maps the top-level status onto
// the severity scale.
func (p *Probe) GetStatus(ctx context.Context) (probe.Severity, error) {
	endpoint := p.creds.Endpoint + statusPath
	p.log.Debug("url", zap.String("endpoint", endpoint))

	resp, err := p.driver.Request(ctx, http.MethodGet, endpoint, driver.Options{
		User:               p.creds.User,
		Password:           p.creds.Password,
		InsecureSkipVerify: true,
	})
	if err != nil {
		return probe.SeverityUnknown, err
	}

	var data map[string]any
	if err := json.Unmarshal(resp.Body, &data); err != nil {
		p.log.Error("response is not valid JSON", zap.Error(err))
		return probe.SeverityUnknown, probe.Errorf(probe.KindStatusFormat, "decode health response: %v", err)
	}

	raw, ok := data["status"]
	if !ok {
		p.log.Error("health status missing from response")
		return probe.SeverityUnknown, probe.Errorf(probe.KindInvalidStatus, "invalid health status received: missing %q", "status")
	}
	value, ok := raw.(string)
	if !ok {
		p.log.Error("status is none or not a string", zap.Any("status", raw))
		return probe.SeverityUnknown, probe.Errorf(probe.KindStatusFormat, "status is none or not a string: %v", raw)
	}

	severity, ok := healthStatuses[strings.ToLower(value)]
	if !ok {
		p.log.Error("invalid health status received", zap.String("status", value))
		return probe.SeverityUnknown, probe.Errorf(probe.KindInvalidStatus, "invalid health status received: %q", value)
	}
	return severity, nil
}
