package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileKV_GetMissingKey(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV failed: %v", err)
	}

	got, err := kv.Get("petstore:users")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing key, got %q", got)
	}
}

func TestFileKV_SetGetRoundTrip(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV failed: %v", err)
	}

	want := []byte(`[{"email":"a@b.c"}]`)
	if err := kv.Set("petstore:users", want); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := kv.Get("petstore:users")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Get = %q; want %q", got, want)
	}
}

func TestFileKV_EmptyValueIsAbsent(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	if err != nil {
		t.Fatalf("NewFileKV failed: %v", err)
	}

	// A file that exists but holds nothing behaves like a missing key.
	if err := os.WriteFile(filepath.Join(dir, "petstore.promotions.json"), nil, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := kv.Get("petstore:promotions")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for empty value, got %q", got)
	}
}

func TestFileKV_Delete(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV failed: %v", err)
	}

	if err := kv.Set("petstore:session", []byte(`{}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Delete("petstore:session"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	got, err := kv.Get("petstore:session")
	if err != nil {
		t.Fatalf("Get after Delete failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil after delete, got %q", got)
	}

	// Deleting a missing key is not an error.
	if err := kv.Delete("petstore:session"); err != nil {
		t.Errorf("Delete of missing key returned error: %v", err)
	}
}

func TestMemKV_Semantics(t *testing.T) {
	kv := NewMemKV()

	got, err := kv.Get("petstore:settings")
	if err != nil || got != nil {
		t.Fatalf("Get on empty store = (%q, %v); want (nil, nil)", got, err)
	}

	if err := kv.Set("petstore:settings", []byte(`{"contrast":75}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err = kv.Get("petstore:settings")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `{"contrast":75}` {
		t.Errorf("unexpected value: %q", got)
	}

	// Empty values read back as absent, matching FileKV.
	if err := kv.Set("petstore:promotions", nil); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err = kv.Get("petstore:promotions")
	if err != nil || got != nil {
		t.Errorf("Get of empty value = (%q, %v); want (nil, nil)", got, err)
	}

	if err := kv.Delete("petstore:settings"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	got, _ = kv.Get("petstore:settings")
	if got != nil {
		t.Errorf("expected nil after delete, got %q", got)
	}
}
