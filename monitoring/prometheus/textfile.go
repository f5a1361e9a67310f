package prometheus

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// WriteMetricsFile writes every metric of the default registry to path in the text
// exposition format, ready for a node exporter textfile collector.
func WriteMetricsFile(path string) error {
	return writeMetricsFile(path, prometheus.DefaultGatherer)
}

func writeMetricsFile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return errors.Wrap(err, "could not write metrics file")
	}
	return nil
}
