package prometheus

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

const (
	prefixKey        = "prefix"
	operationKey     = "operation"
	defaultPrefix    = "global"
	defaultOperation = "none"
)

var (
	defaultLevels = []logrus.Level{logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel}
	logEntries    = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "log_entries_total",
		Help: "Total number of log messages by level, logger prefix and numeric operation.",
	}, []string{"level", "prefix", "operation"})
)

// LogrusCollector is a logrus hook counting log entries. Entries logged with
// an "operation" field, such as failed computations, are labelled with it.
type LogrusCollector struct {
	counterVec *prometheus.CounterVec
	levels     []logrus.Level
}

// NewLogrusCollector returns a hook firing on the given levels, or on info,
// warn and error when none are given.
func NewLogrusCollector(levels ...logrus.Level) *LogrusCollector {
	if len(levels) == 0 {
		levels = defaultLevels
	}
	return &LogrusCollector{
		counterVec: logEntries,
		levels:     levels,
	}
}

// Fire is called on every log call.
func (hook *LogrusCollector) Fire(entry *logrus.Entry) error {
	prefix := defaultPrefix
	if v, ok := entry.Data[prefixKey]; ok {
		s, isString := v.(string)
		if !isString {
			return errors.Errorf("prefix is not a string: %T", v)
		}
		prefix = s
	}
	operation := defaultOperation
	if v, ok := entry.Data[operationKey]; ok {
		// math.Operation and plain strings both print as their name.
		operation = fmt.Sprint(v)
	}
	hook.counterVec.WithLabelValues(entry.Level.String(), prefix, operation).Inc()
	return nil
}

// Levels returns the levels this hook fires on.
func (hook *LogrusCollector) Levels() []logrus.Level {
	return hook.levels
}
