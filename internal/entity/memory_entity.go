package entity

import (
	"time"
)

// Vault types are not enforced here: upstream clients may send arbitrary
// strings, and the assistant only pattern-matches the known four.
const (
	VaultTypeLearning = "learning"
	VaultTypeCultural = "cultural"
	VaultTypeFuture   = "future"
	VaultTypePersonal = "personal"
)

type Memory struct {
	Id          string
	UserEmail   string
	Title       string
	Content     string
	IsImportant bool
	VaultType   string
	Timestamp   time.Time
	IsFavorite  bool
}

func (m *Memory) IsPersonal() bool {
	return m.VaultType == VaultTypePersonal
}
