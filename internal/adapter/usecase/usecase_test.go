package usecase

import (
	"io"
	"log/slog"

	"github.com/shopspring/decimal"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func n(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}
