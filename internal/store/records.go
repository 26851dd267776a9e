package store

import (
	"time"

	"finai/internal/models"
)

// The session file keeps amounts and timestamps as plain strings so the YAML
// stays hand-editable and independent of in-memory representations.

type sessionFile struct {
	Profile      profileRecord       `yaml:"profile"`
	Transactions []transactionRecord `yaml:"transactions"`
	Chat         []chatRecord        `yaml:"chat,omitempty"`
}

type profileRecord struct {
	Name          string `yaml:"name"`
	MonthlyIncome string `yaml:"monthly_income"`
	SavingsGoal   string `yaml:"savings_goal"`
	Plan          string `yaml:"plan"`
}

type transactionRecord struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Amount   string `yaml:"amount"`
	Type     string `yaml:"type"`
	Category string `yaml:"category"`
	Date     string `yaml:"date"`
}

type chatRecord struct {
	ID        string `yaml:"id"`
	Role      string `yaml:"role"`
	Text      string `yaml:"text"`
	Timestamp string `yaml:"timestamp"`
}

func fromSession(s *Session) sessionFile {
	file := sessionFile{
		Profile: profileRecord{
			Name:          s.Profile.Name,
			MonthlyIncome: s.Profile.MonthlyIncome.String(),
			SavingsGoal:   s.Profile.SavingsGoal.String(),
			Plan:          string(s.Profile.Plan),
		},
	}

	for _, tx := range s.Transactions {
		file.Transactions = append(file.Transactions, transactionRecord{
			ID:       tx.ID,
			Title:    tx.Title,
			Amount:   tx.Amount.String(),
			Type:     string(tx.Type),
			Category: tx.Category.String(),
			Date:     tx.Date,
		})
	}

	for _, msg := range s.Chat {
		file.Chat = append(file.Chat, chatRecord{
			ID:        msg.ID,
			Role:      string(msg.Role),
			Text:      msg.Text,
			Timestamp: msg.Timestamp.Format(time.RFC3339),
		})
	}

	return file
}

func (f sessionFile) toSession() *Session {
	session := &Session{
		Profile: models.UserProfile{
			Name:          f.Profile.Name,
			MonthlyIncome: models.ParseAmount(f.Profile.MonthlyIncome),
			SavingsGoal:   models.ParseAmount(f.Profile.SavingsGoal),
			Plan:          models.ParsePlan(f.Profile.Plan),
		}.Normalize(),
	}

	for _, rec := range f.Transactions {
		session.Transactions = append(session.Transactions, models.Transaction{
			ID:       rec.ID,
			Title:    rec.Title,
			Amount:   models.ParseAmount(rec.Amount).Abs(),
			Type:     models.ParseTransactionType(rec.Type),
			Category: models.ParseCategory(rec.Category),
			Date:     rec.Date,
		})
	}

	for _, rec := range f.Chat {
		ts, err := time.Parse(time.RFC3339, rec.Timestamp)
		if err != nil {
			ts = time.Time{}
		}
		role := models.RoleModel
		if rec.Role == string(models.RoleUser) {
			role = models.RoleUser
		}
		session.Chat = append(session.Chat, models.ChatMessage{
			ID:        rec.ID,
			Role:      role,
			Text:      rec.Text,
			Timestamp: ts,
		})
	}

	return session
}
