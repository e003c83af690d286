// Package linkbook owns the in-memory link history and couples link
// generation with persistence.
package linkbook

import (
	"log/slog"
	"slices"
	"time"

	"github.com/sadopc/utmtag/internal/core/history"
	"github.com/sadopc/utmtag/internal/core/utm"
)

// DefaultTimestampLayout renders creation times like the ru-RU locale.
const DefaultTimestampLayout = "02.01.2006, 15:04:05"

// Input is one generation request as typed by the user.
type Input struct {
	BaseURL string
	Params  utm.Params
}

// Persister saves the whole collection.
type Persister interface {
	Save(col []history.Record) error
}

// Options configures a Book.
type Options struct {
	Policy          utm.Policy
	IDScheme        history.IDScheme
	TimestampLayout string
	// Now defaults to time.Now.
	Now func() time.Time
	// Warn receives soft storage failures. Defaults to slog.Warn.
	Warn func(error)
}

// Book is the link history plus the operations that mutate it.
type Book struct {
	records []history.Record
	store   Persister
	opts    Options
}

// New creates a Book over an already loaded collection.
func New(records []history.Record, store Persister, opts Options) *Book {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TimestampLayout == "" {
		opts.TimestampLayout = DefaultTimestampLayout
	}
	if opts.Warn == nil {
		opts.Warn = func(err error) {
			slog.Warn("linkbook: history not saved", "err", err)
		}
	}
	if records == nil {
		records = []history.Record{}
	}
	return &Book{records: records, store: store, opts: opts}
}

// Open loads the collection from store and returns a Book over it.
func Open(store *history.Store, opts Options) *Book {
	return New(store.Load(), store, opts)
}

// Policy returns the defaulting policy in use.
func (b *Book) Policy() utm.Policy {
	return b.opts.Policy
}

// Generate tags in.BaseURL and, on success, appends and saves a new record.
// On error nothing is recorded.
func (b *Book) Generate(in Input) (history.Record, error) {
	tagged, err := utm.Tag(in.BaseURL, in.Params, b.opts.Policy)
	if err != nil {
		return history.Record{}, err
	}

	now := b.opts.Now()
	id, err := history.NextID(b.opts.IDScheme, b.records, now)
	if err != nil {
		return history.Record{}, err
	}

	rec := history.Record{
		ID:        id,
		Timestamp: now.Format(b.opts.TimestampLayout),
		URL:       tagged.URL,
		Source:    tagged.Values.Source,
		Campaign:  tagged.Values.Campaign,
	}
	if tagged.Values.HasMedium {
		medium := tagged.Values.Medium
		rec.Medium = &medium
	}
	if tagged.Values.HasContent {
		content := tagged.Values.Content
		rec.Content = &content
	}

	b.records = append(b.records, rec)
	b.persist()
	return rec, nil
}

// Records returns the history in creation order.
func (b *Book) Records() []history.Record {
	return slices.Clone(b.records)
}

// Newest returns the history most recent first.
func (b *Book) Newest() []history.Record {
	return history.Newest(b.records)
}

// Len returns the number of records.
func (b *Book) Len() int {
	return len(b.records)
}

// Select returns the records with the given ids in creation order.
func (b *Book) Select(ids []string) []history.Record {
	return history.SelectByIDs(b.records, ids)
}

// Delete removes the records with the given ids and saves. It returns the
// number of records removed; nothing is saved when none matched.
func (b *Book) Delete(ids []string) int {
	kept := history.DeleteByIDs(b.records, ids)
	removed := len(b.records) - len(kept)
	if removed == 0 {
		return 0
	}
	b.records = kept
	b.persist()
	return removed
}

func (b *Book) persist() {
	if b.store == nil {
		return
	}
	if err := b.store.Save(b.records); err != nil {
		b.opts.Warn(err)
	}
}
