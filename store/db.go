package store

import (
	"errors"
	"io/fs"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/lapwatch/internal/apperr"
)

const bucketName = "stopwatch"

var errAlreadyRunning = &apperr.Error{
	Message: "is lapwatch already running? Only one instance can be active at a time",
}

// ErrAlreadyRunning is returned when another process holds the database lock.
var ErrAlreadyRunning error = errAlreadyRunning

// Client is a BoltDB backed KV.
type Client struct {
	*bolt.DB
}

func (c *Client) Get(key string) (string, bool) {
	var (
		value string
		found bool
	)

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if v == nil {
			return nil
		}

		value, found = string(v), true

		return nil
	})
	if err != nil {
		slog.Warn("reading from store failed", slog.String("key", key), slog.Any("error", err))
		return "", false
	}

	return value, found
}

func (c *Client) Set(key, value string) {
	err := c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), []byte(value))
	})
	if err != nil {
		slog.Warn("writing to store failed", slog.String("key", key), slog.Any("error", err))
	}
}

// Close flushes pending writes to disk and releases the database lock.
func (c *Client) Close() error {
	if err := c.Sync(); err != nil {
		slog.Warn("syncing store failed", slog.Any("error", err))
	}

	return c.DB.Close()
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient opens the database at dbPath for writing. Ticks write every 10ms,
// so fsync is deferred to Close.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	db.NoSync = true

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{db}, nil
}
