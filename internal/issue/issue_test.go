// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id       Id
		wantNil  bool
		contains string
	}{
		{DialogUnavailableId, false, "No folder dialog available"},
		{DialogFailedId, false, "folder dialog failed"},
		{DefaultPathInvalidId, false, "Default path ignored"},
		{ConfigLoadFailedId, false, "Failed to load configuration"},
		{OutputWriteFailedId, false, "Could not write the selection"},
		{Id(9999), true, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			t.Parallel()

			got := Get(tt.id)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Get(%d) should return nil", tt.id)
				}
				return
			}
			if got == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}
			if got.Id() != tt.id {
				t.Errorf("Id() = %d, want %d", got.Id(), tt.id)
			}
			if !strings.Contains(string(got.MarkdownMsg()), tt.contains) {
				t.Errorf("Get(%d).MarkdownMsg() should contain %q", tt.id, tt.contains)
			}
		})
	}
}

func TestIds(t *testing.T) {
	t.Parallel()

	ids := Ids()
	if len(ids) != 5 {
		t.Fatalf("Ids() returned %d entries, want 5", len(ids))
	}
	for i, id := range ids {
		if id != Id(i+1) {
			t.Errorf("Ids()[%d] = %d, want %d", i, id, i+1)
		}
	}
}

func TestIssue_DocLinksClone(t *testing.T) {
	t.Parallel()

	entry := Get(DialogUnavailableId)
	links := entry.DocLinks()
	if len(links) == 0 {
		t.Fatal("expected doc links on the dialog-unavailable issue")
	}
	links[0] = "modified"
	if entry.DocLinks()[0] == "modified" {
		t.Error("DocLinks() should return a clone")
	}
}

func TestIssue_Render(t *testing.T) {
	// Not parallel: replaces the package-level render func.
	original := render
	t.Cleanup(func() { render = original })

	render = func(in, _ string) (string, error) {
		return in, nil
	}

	rendered, err := Get(DialogUnavailableId).Render("dark")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.Contains(rendered, "zenity") {
		t.Error("Render() output should mention zenity")
	}
	if !strings.Contains(rendered, "See also") {
		t.Error("Render() output should list doc links")
	}
}
