// Package ledger turns the raw cartera export — a semicolon-delimited feed
// of policy/installment rows in Chilean locale — into the normalized
// in-memory entity set the rest of the application consumes.
package ledger

import (
	"io"
	"os"
	"time"

	"github.com/claudiorubilar/seguros/internal/ledger/assemble"
	"github.com/claudiorubilar/seguros/internal/ledger/decode"
	"github.com/claudiorubilar/seguros/internal/ledger/types"
	"github.com/claudiorubilar/seguros/internal/logger"
)

type Options struct {
	// Win1252 decodes legacy core-system exports before parsing.
	Win1252 bool
	// Now anchors status reconciliation and date fallbacks; zero means
	// time.Now().
	Now time.Time
}

// Ingest runs the whole pipeline on one ledger stream: frame → typed rows →
// deduplicated book. Malformed rows are dropped and counted, parse failures
// degrade to zero values; the only hard errors are an unreadable stream or
// an empty ledger.
func Ingest(r io.Reader, opts Options, appLogger *logger.Logger) (*types.Book, error) {
	const component = "Ingest"

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	df, dropped, err := decode.ReadFrame(r, opts.Win1252)
	if err != nil {
		return nil, err
	}
	if dropped > 0 {
		appLogger.Warn(component, "Malformed rows skipped: count=%d", dropped)
	}

	records := decode.Records(df)
	book := assemble.BuildBook(records, now, appLogger)
	book.SkippedRows = dropped

	appLogger.Info(component, "Ledger ingested: rows=%d skipped=%d policies=%d clients=%d agents=%d",
		book.SourceRows, book.SkippedRows, len(book.Policies), len(book.Clients), len(book.Agents))

	return book, nil
}

// IngestFile is Ingest over a file path.
func IngestFile(path string, opts Options, appLogger *logger.Logger) (*types.Book, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Ingest(file, opts, appLogger)
}
