// Package logstash provides the pipeline process probe. Health is derived
// from the CPU usage of the Logstash process rather than a status word.
package logstash

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/stackwatch/check-elastic-stack/internal/driver"
	"github.com/stackwatch/check-elastic-stack/internal/probe"
)

// Name is the registered service name.
const Name = "logstash"

const statusPath = "/_node/stats/process"

// CPU percentage bands. The three bands are exhaustive over all integers.
const (
	warningThreshold  = 70
	criticalThreshold = 85
)

// GetDescription returns the probe description.
func GetDescription() probe.Description {
	return probe.Description{
		Name:        Name,
		Description: "Logstash process CPU usage (<70 OK, 70-84 WARNING, >=85 CRITICAL)",
		StatusPath:  statusPath,
	}
}

// Probe checks the Logstash node stats endpoint.
type Probe struct {
	creds  probe.Credentials
	driver *driver.Driver
	log    *zap.Logger
}

// New creates the pipeline probe.
func New(creds probe.Credentials, d *driver.Driver, log *zap.Logger) *Probe {
	return &Probe{creds: creds, driver: d, log: log}
}

func (p *Probe) Name() string {
	return Name
}

// GetStatus fetches process stats and bands process.cpu.percent into a
// severity.
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

	var data struct {
		Process struct {
			CPU map[string]json.RawMessage `json:"cpu"`
		} `json:"process"`
	}
	if err := json.Unmarshal(resp.Body, &data); err != nil {
		p.log.Error("response is not valid JSON", zap.Error(err))
		return probe.SeverityUnknown, probe.Errorf(probe.KindStatusFormat, "decode stats response: %v", err)
	}

	if data.Process.CPU == nil {
		p.log.Error("process cpu stats missing from response")
		return probe.SeverityUnknown, probe.Errorf(probe.KindInvalidStatus, "invalid health status data, missing key: %q", "process.cpu")
	}
	raw, ok := data.Process.CPU["percent"]
	if !ok {
		p.log.Error("cpu percent missing from response")
		return probe.SeverityUnknown, probe.Errorf(probe.KindInvalidStatus, "invalid health status data, missing key: %q", "percent")
	}

	cpuUsage, err := coerceInt(raw)
	if err != nil {
		p.log.Error("invalid cpu usage value", zap.ByteString("percent", raw))
		return probe.SeverityUnknown, probe.Errorf(probe.KindInvalidStatus, "invalid CPU usage value: %s", raw)
	}

	switch {
	case cpuUsage < warningThreshold:
		return probe.SeverityOK, nil
	case cpuUsage < criticalThreshold:
		return probe.SeverityWarning, nil
	default:
		return probe.SeverityCritical, nil
	}
}

// coerceInt converts a JSON number or numeric string to an integer.
// Fractional values are truncated.
func coerceInt(raw json.RawMessage) (int, error) {
	if string(bytes.TrimSpace(raw)) == "null" {
		return 0, strconv.ErrSyntax
	}
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return int(num), nil
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		n, err := strconv.Atoi(str)
		if err != nil {
			return 0, err
		}
		return n, nil
	}
	return 0, strconv.ErrSyntax
}
