package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoad_ShippedConfig(t *testing.T) {
	_, file, _, _ := runtime.Caller(0)
	path := filepath.Join(filepath.Dir(file), "..", "..", "..", "configs", "topdown.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error = %v", path, err)
	}

	def := Default()
	if *cfg != *def {
		t.Errorf("shipped config = %+v, want defaults %+v", *cfg, *def)
	}
}
