// Package ingest is the front-end that reads market-data records in arrival
// order, identifies each record's symbol and kind, and hands it to a
// Scheduler. Reading is strictly sequential; parallelism begins only once
// the scheduler enters its execution phase.
package ingest

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"orderflow/internal/errors"
	"orderflow/internal/model"
)

const (
	initialLineBuffer = 64 * 1024
	maxLineBuffer     = 8 * 1024 * 1024
)

// Scheduler is the subset of internal/scheduler.Scheduler the ingest
// front-end needs. Declaring it here, rather than importing the scheduler
// package's concrete type, keeps ingest decoupled from how tasks are wired.
type Scheduler interface {
	HandleBook(symbol string, book *model.OrderBookRecord) error
	HandleTrade(symbol string, trade *model.TradeRecord)
}

// Run reads the NDJSON file at path and delegates each record to sched in
// arrival order. Any malformed line, unrecognised record shape, or scheduler
// error aborts immediately with a diagnostic naming the offending line; a
// failure to open or read the file aborts with a diagnostic naming the file.
func Run(path string, sched Scheduler) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(ErrUnopenableInput, fmt.Sprintf("open %s: %v", path, err))
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineBuffer)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		var rec line
		if err := json.Unmarshal(raw, &rec); err != nil {
			return errors.Wrap(ErrMalformedJSON, fmt.Sprintf("line %d: %v", lineNo, err))
		}

		switch {
		case rec.Book != nil:
			if err := sched.HandleBook(rec.Book.Symbol, rec.Book.toRecord()); err != nil {
				return errors.Wrap(err, fmt.Sprintf("line %d", lineNo))
			}
		case rec.Trade != nil:
			sched.HandleTrade(rec.Trade.Symbol, rec.Trade.toRecord())
		default:
			return errors.Wrap(ErrUnknownRecordShape, fmt.Sprintf("line %d", lineNo))
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, fmt.Sprintf("read %s", path))
	}
	return nil
}
