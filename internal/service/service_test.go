package service

import (
	"testing"

	"memory-vault-be/internal/repository/contract"
	"memory-vault-be/internal/repository/ffile"
)

// nopLogger keeps service tests quiet.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestRepos(t *testing.T) (contract.UserRepository, contract.MemoryRepository, contract.ActivityRepository) {
	t.Helper()
	store, err := ffile.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return ffile.NewUserRepository(store), ffile.NewMemoryRepository(store), ffile.NewActivityRepository(store)
}
