package main

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"
)

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"serve", "visible"} {
		if sub, _, err := cmd.Find([]string{name}); err != nil || sub.Name() != name {
			t.Fatalf("subcommand %q not registered (err=%v)", name, err)
		}
	}
	if cmd.RunE == nil {
		t.Fatalf("root should default to serve")
	}
}

func TestVisibleCmd_PrintsSeededListing(t *testing.T) {
	for _, k := range []string{"DB_DSN", "GEO_URL", "GEO_LAT", "GEO_LNG", "KEY_PREFIX"} {
		t.Setenv(k, "")
	}
	t.Setenv("DATA_PATH", filepath.Join(t.TempDir(), "state.db"))

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"visible"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("visible: %v", err)
	}

	var items []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(out.Bytes(), &items); err != nil {
		t.Fatalf("output is not json: %v\n%s", err, out.String())
	}
	if len(items) != 2 || items[0].Name != "Ty" || items[1].Name != "Tee" {
		t.Fatalf("unexpected listing: %+v", items)
	}
}
