// Package cache stores codon weights derived from reference sets in a
// bolt database, so a reference set is processed only once.
package cache

import (
	"crypto/sha256"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"
)

// log is the global logging variable.
var log = logging.MustGetLogger("cache")

// WEIGHTS is the bucket name for all the cached weights.
var WEIGHTS = []byte("weights")

// Entry stores cached weights.
type Entry struct {
	GeneticCode int
	NSequences  int
	Weights     map[string]float64
	Created     time.Time
}

// WeightsIO reads and writes cached weights.
type WeightsIO struct {
	db *bolt.DB
}

// Open opens (or creates) the cache database.
func Open(path string) (*WeightsIO, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, err
	}
	return &WeightsIO{db: db}, nil
}

// Close closes the database.
func (c *WeightsIO) Close() error {
	return c.db.Close()
}

// Key returns the cache key of a reference set for a genetic code.
// Letter case doesn't change the key.
func Key(gcode int, seqs []string) []byte {
	h := sha256.New()
	h.Write([]byte(strconv.Itoa(gcode)))
	for _, s := range seqs {
		h.Write([]byte{'\n'})
		h.Write([]byte(strings.ToUpper(s)))
	}
	return h.Sum(nil)
}

// Save stores the entry under the key.
func (c *WeightsIO) Save(key []byte, e *Entry) error {
	if e.Created.IsZero() {
		e.Created = time.Now()
	}
	data, err := json.Marshal(e)
	if err != nil {
		log.Error("Error serializing weights", err)
		return err
	}
	err = SaveData(c.db, key, data)
	if err != nil {
		log.Error("Error saving weights", err)
	}
	return err
}

// Load returns the entry stored under the key, or nil if there is
// none.
func (c *WeightsIO) Load(key []byte) (*Entry, error) {
	b, err := LoadData(c.db, key)
	if err != nil || b == nil {
		return nil, err
	}

	var e *Entry
	if err = json.Unmarshal(b, &e); err != nil {
		return nil, err
	}
	if e == nil || len(e.Weights) == 0 {
		return nil, nil
	}
	log.Infof("Found cached weights (genetic code %d, %d sequences, %v)", e.GeneticCode, e.NSequences, e.Created.Format(time.RFC3339))
	return e, nil
}

// SaveData saves values in bolt database.
func SaveData(db *bolt.DB, key []byte, data []byte) error {
	if db == nil {
		return nil
	}
	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(WEIGHTS)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}

// LoadData loads data from bolt database. The returned slice is a
// copy and stays valid after the transaction.
func LoadData(db *bolt.DB, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(WEIGHTS)
		if b == nil {
			return nil
		}
		if v := b.Get(key); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
