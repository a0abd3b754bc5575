// pkg/cobrax/topics/topics_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: fstest.MapFS
// PURPOSE: Verify topic scanning, flag-style lookup, and the help
// command wiring over an in-memory topic filesystem.

package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTopics() fstest.MapFS {
	return fstest.MapFS{
		"matching.md":        {Data: []byte("# Matching\n\nHow names are compared")},
		"report.txt":         {Data: []byte("Report columns explained")},
		"option-dry-run.txt": {Data: []byte("Dry run mode details")},
		"notes.json":         {Data: []byte("not a topic")},
	}
}

func TestScanTopics(t *testing.T) {
	t.Run("loads_supported_extensions", func(t *testing.T) {
		tm := New(sampleTopics())
		require.NoError(t, tm.scanTopics())

		assert.ElementsMatch(t, []string{"matching", "report", "option-dry-run"}, tm.ListTopics())

		topic, ok := tm.GetTopic("report")
		require.True(t, ok)
		assert.Equal(t, "Report columns explained", topic.Content)

		_, ok = tm.GetTopic("notes")
		assert.False(t, ok)
	})

	t.Run("custom_extensions", func(t *testing.T) {
		tm := NewWithOptions(sampleTopics(), Options{Extensions: []string{".json"}})
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})

	t.Run("nil_filesystem_has_no_topics", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestGetTopic(t *testing.T) {
	tm := New(sampleTopics())
	require.NoError(t, tm.scanTopics())

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		{"matching", "matching", true},
		{"option-dry-run", "option-dry-run", true},
		{"dry-run", "option-dry-run", true},
		{"--dry-run", "option-dry-run", true},
		{"-dry-run", "option-dry-run", true},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, exists := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, exists)
			if exists {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func newTestRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	root := &cobra.Command{Use: "app"}
	root.AddCommand(&cobra.Command{
		Use: "noop",
		Run: func(cmd *cobra.Command, args []string) {},
	})

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)

	require.NoError(t, Initialize(root, sampleTopics()))
	return root, out
}

func TestInitialize(t *testing.T) {
	t.Run("installs_the_help_command", func(t *testing.T) {
		root, _ := newTestRoot(t)

		var found bool
		for _, cmd := range root.Commands() {
			if cmd.Name() == "help" {
				found = true
				assert.Contains(t, cmd.Use, "command or topic")
			}
		}
		assert.True(t, found)
	})

	t.Run("help_prints_a_topic", func(t *testing.T) {
		root, out := newTestRoot(t)

		root.SetArgs([]string{"help", "report"})
		require.NoError(t, root.Execute())

		assert.Contains(t, out.String(), "Report columns explained")
	})

	t.Run("topics_listing_groups_options", func(t *testing.T) {
		root, out := newTestRoot(t)

		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())

		listing := out.String()
		assert.Contains(t, listing, "General topics:")
		assert.Contains(t, listing, "  matching")
		assert.Contains(t, listing, "Option topics:")
		assert.Contains(t, listing, "  --dry-run")
		assert.Contains(t, listing, "'app help <topic>'")
	})

	t.Run("unknown_topics_fall_back_to_command_help", func(t *testing.T) {
		root, out := newTestRoot(t)

		root.SetArgs([]string{"help", "noop"})
		require.NoError(t, root.Execute())

		assert.Contains(t, out.String(), "Usage:")
	})
}

func TestGlamourRenderer(t *testing.T) {
	r := NewGlamourRenderer()

	t.Run("passes_through_non_markdown", func(t *testing.T) {
		assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
	})

	t.Run("renders_markdown", func(t *testing.T) {
		rendered := r.Render("# Matching\n\nHow names are compared", ".md")
		assert.Contains(t, rendered, "Matching")
		assert.Contains(t, rendered, "How names are compared")
	})
}
