// Package logs mirrors the process logs into a file.
package logs

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const logFilePermissions = 0o600

func addLogWriter(logger *logrus.Logger, w io.Writer) {
	logger.SetOutput(io.MultiWriter(logger.Out, w))
}

// ConfigurePersistentLogging appends every entry of the standard logger to logFileName as
// well. File content is identical to stdout.
func ConfigurePersistentLogging(logFileName string) error {
	return configurePersistentLogging(logrus.StandardLogger(), logFileName)
}

func configurePersistentLogging(logger *logrus.Logger, logFileName string) error {
	logger.WithField("logFileName", logFileName).Info("Logs will be made persistent")
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions) // #nosec G304
	if err != nil {
		return errors.Wrap(err, "could not open log file")
	}
	addLogWriter(logger, f)
	logger.Info("File logging initialized")
	return nil
}
