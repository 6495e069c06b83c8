package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	jsoniter "github.com/json-iterator/go"

	"github.com/go-leo/notify/decorator"
	"github.com/go-leo/notify/notifier"
)

// Entry is one recorded delivery.
type Entry struct {
	ID      string    `json:"id"`
	Payload string    `json:"payload"`
	Chain   string    `json:"chain"`
	At      time.Time `json:"at"`
}

// Journal records every payload crossing a chain link in a badger store,
// before the payload moves on toward the terminal. Keys are time-ordered, so
// Replay walks entries oldest first.
type Journal struct {
	db      *badger.DB
	options *option
}

// New returns a Journal backed by db.
// It panics if db is nil.
func New(db *badger.DB, opts ...Option) *Journal {
	if db == nil {
		panic("journal: nil db")
	}
	return &Journal{db: db, options: newOption(opts...)}
}

// Wrap returns a chain link that records each payload and forwards it to
// next. A record failure propagates to the caller; the payload does not
// reach the successor.
func (j *Journal) Wrap(next notifier.Notifier) notifier.Notifier {
	return &link{Forwarder: decorator.NewForwarder(next), journal: j}
}

// Decorator adapts Wrap for decorator.Chain.
func (j *Journal) Decorator() decorator.Decorator {
	return j.Wrap
}

// Replay calls fn for each recorded entry, oldest first. It stops early when
// fn returns an error or ctx is done, returning that error.
func (j *Journal) Replay(ctx context.Context, fn func(entry Entry) error) error {
	return j.db.View(func(txn *badger.Txn) error {
		prefix := []byte(j.options.Prefix)
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var entry Entry
			err := it.Item().Value(func(val []byte) error {
				return jsoniter.Unmarshal(val, &entry)
			})
			if err != nil {
				return fmt.Errorf("journal: decode %q: %w", it.Item().Key(), err)
			}
			if err := fn(entry); err != nil {
				return err
			}
		}
		return nil
	})
}

func (j *Journal) record(payload string, chain string) error {
	entry := Entry{
		ID:      j.options.NewID(),
		Payload: payload,
		Chain:   chain,
		At:      j.options.Clock(),
	}
	bytes, err := jsoniter.Marshal(entry)
	if err != nil {
		return fmt.Errorf("journal: encode entry: %w", err)
	}
	// 19-digit zero padding keeps keys in chronological order; the ID breaks
	// ties between entries recorded in the same nanosecond.
	key := fmt.Sprintf("%s%019d:%s", j.options.Prefix, entry.At.UnixNano(), entry.ID)
	return j.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

var _ notifier.Notifier = (*link)(nil)

type link struct {
	decorator.Forwarder
	journal *Journal
}

func (l *link) Notify(ctx context.Context, message string) error {
	return l.Deliver(ctx, l.Format(message))
}

func (l *link) Deliver(ctx context.Context, payload string) error {
	if err := l.journal.record(payload, l.Forwarder.Describe()); err != nil {
		return err
	}
	return l.Forwarder.Deliver(ctx, payload)
}

func (l *link) Describe() string {
	return "Journal(" + l.Forwarder.Describe() + ")"
}
