package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestOpenBestStore(t *testing.T) {
	logger := log.New(io.Discard)

	if store := openBestStore(filepath.Join(t.TempDir(), "best.json"), logger); store == nil {
		t.Error("a writable path should give a store")
	}

	t.Setenv("HOME", "")
	if store := openBestStore("~/.arcade/dodge_best.json", logger); store != nil {
		t.Errorf("unexpandable path = %v, expected nil", store)
	}
}
