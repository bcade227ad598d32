// Package savegame encodes engine snapshots into an opaque byte blob and
// round-trips them through files. The format is internal: a recognizable
// envelope around the snapshot, valid only within one build.
package savegame

import (
	"errors"
	"fmt"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/unoflip/server/uno/game"
)

// ErrInvalidSave marks payloads that are readable bytes but not a
// recognized snapshot. I/O failures are surfaced as-is, distinct from this.
var ErrInvalidSave = errors.New("invalid save data")

const magic = "UNOFLIP"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type envelope struct {
	Magic   string        `json:"magic"`
	SavedAt time.Time     `json:"savedAt"`
	State   game.Snapshot `json:"state"`
}

// Encode serializes a snapshot into a save blob.
func Encode(s game.Snapshot) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return json.Marshal(envelope{
		Magic:   magic,
		SavedAt: time.Now(),
		State:   s,
	})
}

// Decode parses and fully validates a save blob. The returned snapshot is
// safe to apply to a live engine; nothing is applied here.
func Decode(data []byte) (game.Snapshot, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return game.Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidSave, err)
	}
	if env.Magic != magic {
		return game.Snapshot{}, fmt.Errorf("%w: unrecognized payload", ErrInvalidSave)
	}
	if err := env.State.Validate(); err != nil {
		return game.Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidSave, err)
	}
	return env.State, nil
}

// Save writes the snapshot to path.
func Save(path string, s game.Snapshot) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write save file: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"path":   path,
		"gameId": s.GameID,
	}).Info("game saved")
	return nil
}

// Load reads and decodes the snapshot at path. A missing or unreadable file
// surfaces as an I/O error; a readable file that is not a save surfaces as
// ErrInvalidSave.
func Load(path string) (game.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("read save file: %w", err)
	}
	s, err := Decode(data)
	if err != nil {
		return game.Snapshot{}, err
	}
	logrus.WithFields(logrus.Fields{
		"path":   path,
		"gameId": s.GameID,
	}).Info("game loaded")
	return s, nil
}
