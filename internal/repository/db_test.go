package repository

import "testing"

func TestNewDBInvalidDSN(t *testing.T) {
	db, err := NewDB("not a valid dsn")
	if err == nil {
		t.Fatal("expected error for malformed DSN")
	}
	if db != nil {
		t.Error("expected nil db on DSN parse failure")
	}
}
