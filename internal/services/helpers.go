package services

import (
	"log/slog"

	"github.com/edutrack/ledger-service/internal/repositories"
)

// recoverLoad applies the documented recovery policy for store loads:
// malformed data is replaced by the store's empty default with a warning
// (availability over strict durability); I/O failures are persistence
// failures and propagate.
func recoverLoad[T any](logger *slog.Logger, val T, err error) (T, error) {
	if err == nil {
		return val, nil
	}
	if repositories.IsLoadError(err) {
		logger.Warn("malformed store data, substituting defaults", "error", err)
		return val, nil
	}
	var zero T
	return zero, persistErr(err)
}
