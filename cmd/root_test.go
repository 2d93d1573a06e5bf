package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestExecuteRejectsInvalidColorMode(t *testing.T) {
	t.Setenv("CONCH_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"version", "--color", "sometimes"})
	defer rootCmd.SetArgs(nil)

	err := Execute()
	if err == nil {
		t.Fatal("expected error for invalid color mode")
	}
	if !strings.Contains(err.Error(), "invalid color mode") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAppFromMissingContext(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	if app := appFrom(cmd); app != nil {
		t.Fatalf("appFrom without state = %+v, want nil", app)
	}
}
