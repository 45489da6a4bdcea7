// Package kibana provides the dashboard health probe.
package kibana

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
const Name = "kibana"

const statusPath = "/api/status"

var healthStatuses = map[string]probe.Severity{
	"available":   probe.SeverityOK,
	"degraded":    probe.SeverityWarning,
	"critical":    probe.SeverityCritical,
	"unavailable": probe.SeverityUnknown,
}

// GetDescription returns the probe description.
func GetDescription() probe.Description {
	return probe.Description{
		Name:        Name,
		Description: "Kibana overall status level (available/degraded/critical/unavailable)",
		StatusPath:  statusPath,
	}
}

// Probe checks the Kibana status API.
type Probe struct {
	creds  probe.Credentials
	driver *driver.Driver
	log    *zap.Logger
}

// New creates the dashboard probe.
func New(creds probe.Credentials, d *driver.Driver, log *zap.Logger) *Probe {
	return &Probe{creds: creds, driver: d, log: log}
}

func (p *Probe) Name() string {
	return Name
}

// GetStatus fetches /api/status and maps status.overall.level onto the
// severity scale.
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
		return probe.SeverityUnknown, probe.Errorf(probe.KindStatusFormat, "decode status response: %v", err)
	}

	value, err := overallLevel(data)
	if err != nil {
		p.log.Error("could not extract status level", zap.Error(err))
		return probe.SeverityUnknown, err
	}

	severity, ok := healthStatuses[strings.ToLower(value)]
	if !ok {
		p.log.Error("invalid health status received", zap.String("level", value))
		return probe.SeverityUnknown, probe.Errorf(probe.KindInvalidStatus, "invalid health status received: %q", value)
	}
	return severity, nil
}

// overallLevel walks status.overall.level. A missing key is an invalid
// status; a present but null or mistyped value is a format error.
func overallLevel(data map[string]any) (string, error) {
	node := any(data)
	for _, key := range []string{"status", "overall"} {
		obj, ok := node.(map[string]any)
		if !ok {
			return "", probe.Errorf(probe.KindStatusFormat, "status is none or not an object: %v", node)
		}
		node, ok = obj[key]
		if !ok {
			return "", probe.Errorf(probe.KindInvalidStatus, "invalid health status received: missing %q", key)
		}
	}
	obj, ok := node.(map[string]any)
	if !ok {
		return "", probe.Errorf(probe.KindStatusFormat, "status is none or not an object: %v", node)
	}
	raw, ok := obj["level"]
	if !ok {
		return "", probe.Errorf(probe.KindInvalidStatus, "invalid health status received: missing %q", "level")
	}
	value, ok := raw.(string)
	if !ok {
		return "", probe.Errorf(probe.KindStatusFormat, "status is none or not a string: %v", raw)
	}
	return value, nil
}
