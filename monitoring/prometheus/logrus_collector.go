// Package prometheus counts log entries and dumps the metric registry for batch runs that
// never serve a scrape endpoint.
package prometheus

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

const (
	prefixKey     = "prefix"
	defaultPrefix = "global"
)

var (
	errPrefixType = errors.New("prefix is not a string")

	// Debug and trace entries are left out, a verbose run would otherwise skew the counts.
	countedLevels = []logrus.Level{logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel}
	logEntries    = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "log_entries_total",
		Help: "Log entries by level and package prefix.",
	}, []string{"level", "prefix"})
)

// LogrusCollector is a logrus hook that counts entries in log_entries_total.
type LogrusCollector struct {
	entries *prometheus.CounterVec
}

// NewLogrusCollector returns a hook feeding the shared counter. Every hook adds to the same
// series, so installing it twice double counts.
func NewLogrusCollector() *LogrusCollector {
	return &LogrusCollector{entries: logEntries}
}

// Fire counts entry under its level and the prefix field set by the package logger.
func (c *LogrusCollector) Fire(entry *logrus.Entry) error {
	prefix, err := prefixOf(entry)
	if err != nil {
		return err
	}
	c.entries.WithLabelValues(entry.Level.String(), prefix).Inc()
	return nil
}

// Levels lists the levels Fire is called for.
func (*LogrusCollector) Levels() []logrus.Level {
	return countedLevels
}

func prefixOf(entry *logrus.Entry) (string, error) {
	v, ok := entry.Data[prefixKey]
	if !ok {
		return defaultPrefix, nil
	}
	prefix, ok := v.(string)
	if !ok {
		return "", errors.Wrapf(errPrefixType, "got %T", v)
	}
	return prefix, nil
}
