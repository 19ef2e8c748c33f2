package main

import (
	"bytes"
	"context"
	"designers/internal/config"
	"designers/internal/database"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestVersionCmd(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "designers dev") {
		t.Errorf("expected output to contain 'designers dev', got: %s", out)
	}
	if !strings.Contains(out, "commit: none") {
		t.Errorf("expected output to contain 'commit: none', got: %s", out)
	}
}

func TestRootCmdHelp(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("help failed: %v", err)
	}

	out := buf.String()
	for _, sub := range []string{"serve", "check", "version"} {
		if !strings.Contains(out, sub) {
			t.Errorf("expected help to list %q, got: %s", sub, out)
		}
	}
}

func checkProvider(t *testing.T, schema string) database.Provider {
	t.Helper()
	provider := database.NewPerCallProvider(config.Config{
		DBType: database.DBTypeSQLite,
		DBPath: filepath.Join(t.TempDir(), "check.db"),
	})
	if schema != "" {
		conn, err := provider.Acquire(context.Background())
		if err != nil {
			t.Fatalf("acquire: %v", err)
		}
		defer conn.Release()
		if err := conn.DB.Exec(schema).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return provider
}

func TestRunCheck(t *testing.T) {
	tests := []struct {
		name    string
		schema  string
		wantErr bool
		expect  []string
	}{
		{
			name:    "empty store",
			wantErr: true,
			expect:  []string{"designers", "missing"},
		},
		{
			name:    "designers only",
			schema:  "CREATE TABLE designers (id INTEGER PRIMARY KEY);",
			wantErr: true,
			expect:  []string{"ok", "llm_interactions_log"},
		},
		{
			name: "initialised",
			schema: "CREATE TABLE designers (id INTEGER PRIMARY KEY);" +
				"CREATE TABLE llm_interactions_log (id INTEGER PRIMARY KEY);",
			expect: []string{"designers", "llm_interactions_log", "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			cmd := &cobra.Command{}
			cmd.SetOut(buf)

			err := runCheck(context.Background(), cmd, checkProvider(t, tt.schema))
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
			for _, want := range tt.expect {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("expected output to contain %q, got: %s", want, buf.String())
				}
			}
		})
	}
}

func TestRunCheckUnreachable(t *testing.T) {
	provider := database.NewPerCallProvider(config.Config{DBType: "oracle"})
	if err := runCheck(context.Background(), &cobra.Command{}, provider); err == nil {
		t.Fatal("expected unreachable store to fail")
	}
}
