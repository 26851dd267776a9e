// Package store provides loading and saving of the session data: the
// transaction ledger, the user profile and the chat history. The aggregation
// and normalization layers stay stateless; the store and the commands above it
// own all mutation.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"finai/internal/logging"
	"finai/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Session is the whole in-memory state of one user session.
type Session struct {
	Profile      models.UserProfile
	Transactions []models.Transaction
	Chat         []models.ChatMessage
}

// Append adds a transaction to the ledger. Insertion order is preserved;
// recency displays rely on it.
func (s *Session) Append(tx models.Transaction) {
	s.Transactions = append(s.Transactions, tx)
}

// AppendChat adds a message to the chat history.
func (s *Session) AppendChat(msg models.ChatMessage) {
	s.Chat = append(s.Chat, msg)
}

// SessionStore reads and writes a session to a single YAML file.
type SessionStore struct {
	Path string
}

// NewSessionStore creates a store bound to the given file path.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{Path: path}
}

// Load reads the session file. A missing file is not an error: a fresh
// session seeded with the demo ledger is returned instead, so the first run
// works without any setup.
func (s *SessionStore) Load() (*Session, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField(logging.FieldFile, s.Path).Debug("No session file found, starting from seed data")
			return SeedSession(time.Now()), nil
		}
		return nil, fmt.Errorf("could not read session file: %w", err)
	}

	var file sessionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("could not parse session file: %w", err)
	}

	session := file.toSession()
	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.Path},
		logging.Field{Key: logging.FieldCount, Value: len(session.Transactions)},
	).Debug("Session loaded")
	return session, nil
}

// Save writes the session back to disk, creating parent directories as
// needed.
func (s *SessionStore) Save(session *Session) error {
	if dir := filepath.Dir(s.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("could not create session directory: %w", err)
		}
	}

	data, err := yaml.Marshal(fromSession(session))
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	if err := os.WriteFile(s.Path, data, 0600); err != nil {
		return fmt.Errorf("could not write session file: %w", err)
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.Path},
		logging.Field{Key: logging.FieldCount, Value: len(session.Transactions)},
	).Debug("Session saved")
	return nil
}

// SeedSession builds the demo ledger shown on first run, anchored around the
// given instant: a salary on the first of the month, rent on the fifth, and a
// few recent everyday expenses.
func SeedSession(now time.Time) *Session {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 9, 0, 0, 0, now.Location())
	fifthOfMonth := time.Date(now.Year(), now.Month(), 5, 9, 0, 0, 0, now.Location())

	iso := func(t time.Time) string { return t.Format(time.RFC3339) }

	return &Session{
		Profile: models.UserProfile{Plan: models.PlanFree},
		Transactions: []models.Transaction{
			models.NewTransaction("Salary", dec("5000"), models.TypeIncome, models.CategorySalary, iso(firstOfMonth)),
			models.NewTransaction("Rent", dec("1800"), models.TypeExpense, models.CategoryHousing, iso(fifthOfMonth)),
			models.NewTransaction("Weekly groceries", dec("450.50"), models.TypeExpense, models.CategoryFood, iso(now.AddDate(0, 0, -2))),
			models.NewTransaction("Ride to work", dec("24.90"), models.TypeExpense, models.CategoryTransport, iso(now.AddDate(0, 0, -1))),
			models.NewTransaction("Movie night", dec("85.00"), models.TypeExpense, models.CategoryLeisure, iso(now)),
		},
	}
}

func dec(s string) decimal.Decimal {
	return models.ParseAmount(s)
}
