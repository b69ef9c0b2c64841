package repository

import (
	"log/slog"

	"shutterbook/internal/infra"
)

func wrapPgErr(logger *slog.Logger, msg string, err error) error {
	return infra.WrapPgErr(logger, msg, err)
}
