package cmd

import (
	"bytes"
	"testing"
)

func TestRootCmd_HasCommandGroups(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"project", "board", "card", "note", "link", "use", "serve", "tui", "tutorial"} {
		found, _, err := root.Find([]string{name})
		if err != nil || found == root {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"frobnicate"})

	if err := root.Execute(); err == nil {
		t.Error("expected an error for an unknown command")
	}
}
