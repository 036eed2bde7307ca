package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestResolveIdentity(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "usercache.json")
	cache := `[{"name":"Alex","uuid":"ec561538-f3fd-461d-aff5-086b22154bce","expiresOn":"2024-01-01"},{"name":"Steve","uuid":"8667ba71-b85a-4004-af54-457a9734eed7"}]`
	if err := os.WriteFile(file, []byte(cache), 0644); err != nil {
		t.Fatal(err)
	}

	id, err := ResolveIdentity(file, "Steve")
	if err != nil {
		t.Fatal(err)
	}
	if id.UUID != "8667ba71-b85a-4004-af54-457a9734eed7" || id.Minted {
		t.Errorf("unexpected identity %+v", id)
	}

	if _, err := ResolveIdentity(file, "Herobrine"); !errors.Is(err, ErrIdentityNotFound) {
		t.Errorf("expected ErrIdentityNotFound, got %v", err)
	}
	if _, err := ResolveIdentity(filepath.Join(dir, "missing.json"), "Steve"); !errors.Is(err, ErrIdentityNotFound) {
		t.Errorf("expected ErrIdentityNotFound for a missing cache, got %v", err)
	}
}

func TestMintIdentity(t *testing.T) {
	a, b := MintIdentity("Steve"), MintIdentity("Steve")
	if a.UUID == b.UUID {
		t.Errorf("minted identities should differ")
	}
	parsed, err := uuid.Parse(a.UUID)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.Version() != 4 || !a.Minted || a.Name != "Steve" {
		t.Errorf("unexpected identity %+v", a)
	}
}

func TestEnsureProfile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "launcher_profiles.json")

	if err := EnsureProfile(root); err != nil {
		t.Fatal(err)
	}
	buf, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != `{"profiles":{}}` {
		t.Errorf("unexpected profile %s", buf)
	}

	// existing profiles are left alone
	custom := `{"profiles":{"x":{}}}`
	os.WriteFile(file, []byte(custom), 0644)
	if err := EnsureProfile(root); err != nil {
		t.Fatal(err)
	}
	buf, _ = os.ReadFile(file)
	if string(buf) != custom {
		t.Errorf("profile was overwritten: %s", buf)
	}
}
