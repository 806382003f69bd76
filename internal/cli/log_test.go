package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/probemap/pkg/observability"
)

func TestNewLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("loaded dataset", "agencies", 12)

	line := buf.String()
	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(line) {
		t.Errorf("line %q should start with an HH:MM:SS.cc timestamp", line)
	}
	if !strings.Contains(line, "agencies=12") {
		t.Errorf("line %q should carry key/value pairs", line)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		want  bool
	}{
		{"debug hidden at info", LogInfo, false},
		{"debug shown with --verbose", LogDebug, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newLogger(&buf, tt.level).Debug("skipped image", "path", "seal.png")
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("debug written = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("cache hit")
	if !strings.Contains(buf.String(), "cache hit") {
		t.Error("SetLogLevel(LogDebug) should enable debug output")
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, LogInfo)).done("Rendered 2 format(s)")

	if !regexp.MustCompile(`Rendered 2 format\(s\) \([0-9.]+m?s\)`).MatchString(buf.String()) {
		t.Errorf("output %q should end with the elapsed time", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("empty context should yield the default logger")
	}
	l := newLogger(&bytes.Buffer{}, LogInfo)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		t.Error("stored logger should be returned")
	}
}

func TestRootCommandStoresLogger(t *testing.T) {
	t.Cleanup(observability.Reset)

	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	var got *log.Logger
	root.AddCommand(&cobra.Command{
		Use: "capture",
		RunE: func(cmd *cobra.Command, args []string) error {
			got = loggerFromContext(cmd.Context())
			return nil
		},
	})
	root.SetArgs([]string{"capture"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got != c.Logger {
		t.Error("subcommands should see the CLI logger in their context")
	}
}
