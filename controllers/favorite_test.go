package controllers

import (
	"net/http"
	"testing"
)

func TestAddFavoriteStatusMissingUser(t *testing.T) {
	status, msg := addFavoriteStatus(0, 0)
	if status != http.StatusNotFound {
		t.Errorf("missing user: got %d, want %d", status, http.StatusNotFound)
	}
	if msg != "User not found" {
		t.Errorf("missing user message: got %q", msg)
	}
}

func TestAddFavoriteStatusDuplicate(t *testing.T) {
	status, msg := addFavoriteStatus(1, 0)
	if status != http.StatusConflict {
		t.Errorf("duplicate favorite: got %d, want %d", status, http.StatusConflict)
	}
	if msg != "Property is already in favorites" {
		t.Errorf("duplicate message: got %q", msg)
	}
}

func TestAddFavoriteStatusAdded(t *testing.T) {
	if status, _ := addFavoriteStatus(1, 1); status != 0 {
		t.Errorf("successful add should not error, got %d", status)
	}
}
