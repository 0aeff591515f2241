package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCombineFolders_Flattens(t *testing.T) {
	root := t.TempDir()
	output := t.TempDir()

	for sub, frames := range map[string][]string{
		"video1": {"f1.jpg", "f2.jpg"},
		"video2": {"f3.jpg"},
	} {
		dir := filepath.Join(root, sub)
		if err := os.Mkdir(dir, 0755); err != nil {
			t.Fatalf("Failed to create test dir: %v", err)
		}
		for _, name := range frames {
			if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0644); err != nil {
				t.Fatalf("Failed to create test frame: %v", err)
			}
		}
	}

	copied, failed, err := CombineFolders(root, output, 1)
	if err != nil {
		t.Fatalf("CombineFolders() error = %v", err)
	}
	if copied != 3 || failed != 0 {
		t.Errorf("copied = %d failed = %d, want 3 and 0", copied, failed)
	}

	for _, name := range []string{"f1.jpg", "f2.jpg", "f3.jpg"} {
		got, err := os.ReadFile(filepath.Join(output, name))
		if err != nil {
			t.Errorf("missing output file %s: %v", name, err)
			continue
		}
		if string(got) != name {
			t.Errorf("content of %s = %q, want %q", name, got, name)
		}
	}
}

func TestCombineFolders_CollisionSuffix(t *testing.T) {
	root := t.TempDir()
	output := t.TempDir()

	// two sibling folders both holding a.jpg with different contents
	contents := map[string]string{"video1": "first", "video2": "second"}
	for sub, content := range contents {
		dir := filepath.Join(root, sub)
		if err := os.Mkdir(dir, 0755); err != nil {
			t.Fatalf("Failed to create test dir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "a.jpg"), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create test frame: %v", err)
		}
	}

	// single worker keeps collision resolution deterministic for the test
	copied, failed, err := CombineFolders(root, output, 1)
	if err != nil {
		t.Fatalf("CombineFolders() error = %v", err)
	}
	if copied != 2 || failed != 0 {
		t.Errorf("copied = %d failed = %d, want 2 and 0", copied, failed)
	}

	first, err := os.ReadFile(filepath.Join(output, "a.jpg"))
	if err != nil {
		t.Fatalf("missing a.jpg: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(output, "a_1.jpg"))
	if err != nil {
		t.Fatalf("missing a_1.jpg: %v", err)
	}

	// no silent overwrite: both source contents survive under some name
	got := map[string]bool{string(first): true, string(second): true}
	if !got["first"] || !got["second"] {
		t.Errorf("output contents = %v, want both %q and %q", got, "first", "second")
	}
}

func TestCombineFolders_IgnoresRootFiles(t *testing.T) {
	root := t.TempDir()
	output := t.TempDir()

	// files directly in the root are not part of any subfolder
	if err := os.WriteFile(filepath.Join(root, "stray.jpg"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	copied, _, err := CombineFolders(root, output, 1)
	if err != nil {
		t.Fatalf("CombineFolders() error = %v", err)
	}
	if copied != 0 {
		t.Errorf("copied = %d, want 0", copied)
	}
}

func TestCombineFolders_MissingRoot(t *testing.T) {
	if _, _, err := CombineFolders("/path/to/nonexistent", t.TempDir(), 1); err == nil {
		t.Error("CombineFolders() on missing root should return an error")
	}
}

func TestUniqueDest(t *testing.T) {
	dir := t.TempDir()

	if got, want := uniqueDest(dir, "a.jpg"), filepath.Join(dir, "a.jpg"); got != want {
		t.Errorf("uniqueDest() with no collision = %q, want %q", got, want)
	}

	for _, name := range []string{"a.jpg", "a_1.jpg", "a_2.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}

	if got, want := uniqueDest(dir, "a.jpg"), filepath.Join(dir, "a_3.jpg"); got != want {
		t.Errorf("uniqueDest() with collisions = %q, want %q", got, want)
	}
}
