// Package probes provides the service probe registry.
package probes

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/stackwatch/check-elastic-stack/internal/driver"
	"github.com/stackwatch/check-elastic-stack/internal/probe"
	"github.com/stackwatch/check-elastic-stack/internal/probes/elasticsearch"
	"github.com/stackwatch/check-elastic-stack/internal/probes/kibana"
	"github.com/stackwatch/check-elastic-stack/internal/probes/logstash"
)

// Factory constructs a probe bound to one set of credentials and a driver.
type Factory func(creds probe.Credentials, d *driver.Driver, log *zap.Logger) probe.Probe

// registry maps lower-cased service names to factories. Keeping the map
// explicit makes the set of supported services checkable at a glance.
var registry = map[string]Factory{
	elasticsearch.Name: func(creds probe.Credentials, d *driver.Driver, log *zap.Logger) probe.Probe {
		return elasticsearch.New(creds, d, log)
	},
	kibana.Name: func(creds probe.Credentials, d *driver.Driver, log *zap.Logger) probe.Probe {
		return kibana.New(creds, d, log)
	},
	logstash.Name: func(creds probe.Credentials, d *driver.Driver, log *zap.Logger) probe.Probe {
		return logstash.New(creds, d, log)
	},
}

// Resolve returns the factory for the named service. Lookup is
// case-insensitive; the error carries the name as given.
func Resolve(name string) (Factory, error) {
	factory, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, probe.Errorf(probe.KindNotFound, "service %q not recognized", name)
	}
	return factory, nil
}

// Names returns the registered service names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAllDescriptions returns descriptions of all registered probes.
func GetAllDescriptions() []probe.Description {
	return []probe.Description{
		elasticsearch.GetDescription(),
		kibana.GetDescription(),
		logstash.GetDescription(),
	}
}
