package history

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

// ErrNoMatchingRecord indicates no journal record exists for a sequence number.
var ErrNoMatchingRecord = errors.New("history: no matching journal record")

var bucketCmds = []byte("cmds")

// Record is one journaled command line.
type Record struct {
	Seq  int       `json:"-"`
	ID   string    `json:"id"`
	Line string    `json:"line"`
	At   time.Time `json:"at"`
}

// Journal is a persistent, append-only log of executed command lines.
// Unlike the undo stack it survives restarts; it records what was run,
// not how to reverse it.
type Journal struct {
	db *bolt.DB
}

// OpenJournal opens (creating if needed) the journal database at path.
func OpenJournal(path string) (*Journal, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCmds)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize journal %s: %w", path, err)
	}
	return &Journal{db: db}, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Append adds a command line to the journal and returns its sequence number.
func (j *Journal) Append(line string) (int, error) {
	var seq uint64
	err := j.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCmds)
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		rec := Record{
			ID:   uuid.NewString(),
			Line: line,
			At:   time.Now().UTC(),
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), data)
	})
	if err != nil {
		return 0, fmt.Errorf("journal append: %w", err)
	}
	return int(seq), nil
}

// NextSeq returns the sequence number the next appended record will get.
func (j *Journal) NextSeq() (int, error) {
	var seq uint64
	err := j.db.View(func(tx *bolt.Tx) error {
		seq = tx.Bucket(bucketCmds).Sequence() + 1
		return nil
	})
	return int(seq), err
}

// Cmd returns the record with the given sequence number.
func (j *Journal) Cmd(seq int) (Record, error) {
	var rec Record
	err := j.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketCmds).Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoMatchingRecord
		}
		if err := json.Unmarshal(v, &rec); err != nil {
			return err
		}
		rec.Seq = seq
		return nil
	})
	return rec, err
}

// Cmds returns all records with sequence numbers in [from, upto).
func (j *Journal) Cmds(from, upto int) ([]Record, error) {
	var recs []Record
	err := j.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketCmds).Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			var rec Record
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			rec.Seq = int(unmarshalSeq(k))
			recs = append(recs, rec)
		}
		return nil
	})
	return recs, err
}

func marshalSeq(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
