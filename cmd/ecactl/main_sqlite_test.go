//go:build sqlite

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunStoreAndShowSQLite(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "eca.db")

	var out bytes.Buffer
	args := []string{"run", "-cells", "5", "-rows", "3", "-initial", "00100", "-rule", "254", "-quiet", "-store", "sqlite", "-db-path", dbPath}
	if err := run(ctx, args, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	out.Reset()
	if err := run(ctx, []string{"runs", "-db-path", dbPath}, &out); err != nil {
		t.Fatalf("runs: %v", err)
	}
	fields := strings.Fields(out.String())
	if len(fields) == 0 || !strings.Contains(out.String(), "rule=254") {
		t.Fatalf("runs output = %q", out.String())
	}

	out.Reset()
	if err := run(ctx, []string{"show", "-db-path", dbPath, "-id", fields[0], "-glyphs", "off"}, &out); err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.HasSuffix(out.String(), "00100\n01110\n01110\n") {
		t.Fatalf("show output = %q", out.String())
	}
}
