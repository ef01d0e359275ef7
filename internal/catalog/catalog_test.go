package catalog

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestAllCommandsOrder(t *testing.T) {
	want := []string{
		"Update Homebrew",
		"Update npm packages",
		"Update bun",
		"Update Ruby gems",
		"Update Rust/Cargo packages",
		"Sync and upgrade Doom Emacs",
		"Set Solana config to mainnet-beta",
		"Check Solana address",
		"Set Solana config to devnet",
		"Request Solana airdrop",
		"Check Solana balance",
		"Handle Site repository",
		"Install software updates",
		"Run mac-cleanup",
	}
	c := AllCommands()
	if len(c) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(c))
	}
	for i, name := range want {
		if c[i].Name != name {
			t.Fatalf("command %d: expected %q got %q", i, name, c[i].Name)
		}
	}
}

func TestAllCommandsKinds(t *testing.T) {
	for _, cmd := range AllCommands() {
		if cmd.Name == "Handle Site repository" {
			if cmd.Kind != Custom || cmd.Invocation != "handle_site_repo" {
				t.Fatalf("site command should be custom handle_site_repo, got %v %q", cmd.Kind, cmd.Invocation)
			}
			continue
		}
		if cmd.Kind != Shell {
			t.Fatalf("%s: expected shell kind, got %v", cmd.Name, cmd.Kind)
		}
	}
}

func TestAllCommandsReturnsCopy(t *testing.T) {
	a := AllCommands()
	a[0].Name = "mutated"
	a = Remove(a, "Update bun")
	b := AllCommands()
	if b[0].Name != "Update Homebrew" || len(b) != 14 {
		t.Fatalf("built-in catalog was mutated: %q len=%d", b[0].Name, len(b))
	}
}

func TestAddAppends(t *testing.T) {
	c := AllCommands()
	extra := Command{Name: "Update pip", Invocation: "pip install -U pip", Kind: Shell, Category: "Package Managers"}
	c = Add(c, extra)
	if len(c) != 15 || c[14] != extra {
		t.Fatalf("expected command appended at end, got %+v", c[len(c)-1])
	}
	if c[0].Name != "Update Homebrew" {
		t.Fatalf("add reordered catalog")
	}
}

func TestRemoveKeepsOrder(t *testing.T) {
	orig := AllCommands()
	var want []string
	for _, cmd := range orig {
		if cmd.Name != "Update npm packages" {
			want = append(want, cmd.Name)
		}
	}
	c := Remove(AllCommands(), "Update npm packages")
	var got []string
	for _, cmd := range c {
		got = append(got, cmd.Name)
	}
	if !slices.Equal(got, want) {
		t.Fatalf("unexpected catalog after remove:\n got %v\nwant %v", got, want)
	}
}

func TestRemoveAllDuplicatesAndMissing(t *testing.T) {
	c := Catalog{{Name: "a"}, {Name: "b"}, {Name: "a"}, {Name: "c"}}
	c = Remove(c, "a")
	if len(c) != 2 || c[0].Name != "b" || c[1].Name != "c" {
		t.Fatalf("expected [b c], got %+v", c)
	}
	c = Remove(c, "missing")
	if len(c) != 2 {
		t.Fatalf("removing a missing name changed the catalog: %+v", c)
	}
}

func TestFilterByCategory(t *testing.T) {
	got := FilterByCategory(AllCommands(), "Blockchain")
	if len(got) != 5 {
		t.Fatalf("expected 5 blockchain commands, got %d", len(got))
	}
	if got[0].Name != "Set Solana config to mainnet-beta" || got[4].Name != "Check Solana balance" {
		t.Fatalf("blockchain commands out of order: %q .. %q", got[0].Name, got[4].Name)
	}
	if len(FilterByCategory(AllCommands(), "blockchain")) != 0 {
		t.Fatalf("category match should be exact")
	}
}

func TestCategoriesSortedDistinct(t *testing.T) {
	c := Catalog{{Category: "System"}, {Category: "Blockchain"}, {Category: "System"}, {Category: "Package Managers"}}
	got := Categories(c)
	want := []string{"Blockchain", "Package Managers", "System"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v got %v", want, got)
	}
}

func TestFind(t *testing.T) {
	c := AllCommands()
	i, ok := Find(c, "Check Solana balance")
	if !ok || i != 10 {
		t.Fatalf("expected index 10, got %d %v", i, ok)
	}
	if _, ok := Find(c, "nope"); ok {
		t.Fatalf("expected missing name to be reported")
	}
}

func TestLabel(t *testing.T) {
	if got := (Command{Name: "x", Icon: "🍺"}).Label(); got != "🍺 x" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := (Command{Name: "x"}).Label(); got != "x" {
		t.Fatalf("unexpected label without icon %q", got)
	}
}

func TestParseRejectsUnknownKind(t *testing.T) {
	doc := `
[[command]]
name = "bad"
invocation = "true"
kind = "python"
`
	if _, err := Parse([]byte(doc)); err == nil || !strings.Contains(err.Error(), "invalid kind") {
		t.Fatalf("expected invalid kind error, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "catalog.toml")
	doc := `
[[command]]
name = "Say hi"
invocation = "echo hi"
kind = "shell"
category = "Misc"
`
	if err := os.WriteFile(p, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c) != 1 || c[0].Name != "Say hi" || c[0].Kind != Shell {
		t.Fatalf("unexpected catalog %+v", c)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
