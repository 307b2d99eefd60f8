// Package usecase contains the application use cases.
package usecase

import (
	"errors"
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
)

// logCategory is the log category for task API failures.
const logCategory = "remote"

// remoteFailure logs a failed API call and returns it as a domain.ErrRemote.
func remoteFailure(logger domain.Logger, op string, err error) error {
	msg := fmt.Sprintf("%s failed: %v", op, err)
	var remoteErr *domain.RemoteError
	if errors.As(err, &remoteErr) && remoteErr.RequestID != "" {
		msg += " (request_id=" + remoteErr.RequestID + ")"
	}
	logger.Error(logCategory, msg)

	if errors.Is(err, domain.ErrRemote) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrRemote, op, err)
}

// loggerOrNop returns logger, or a no-op logger when nil.
func loggerOrNop(logger domain.Logger) domain.Logger {
	if logger == nil {
		return domain.NopLogger{}
	}
	return logger
}
