package fetch

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTree(t *testing.T, root string, files []string) {
	t.Helper()
	for _, rel := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(rel), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFindFile(t *testing.T) {
	tests := []struct {
		name      string
		files     []string
		dirs      []string
		target    string
		wantRel   string
		wantFound bool
	}{
		{
			name:      "top_level",
			files:     []string{"ffmpeg", "README"},
			target:    "ffmpeg",
			wantRel:   "ffmpeg",
			wantFound: true,
		},
		{
			name:      "deeply_nested",
			files:     []string{"a/b/c/d/e/ffmpeg", "a/notes.txt"},
			target:    "ffmpeg",
			wantRel:   "a/b/c/d/e/ffmpeg",
			wantFound: true,
		},
		{
			name:      "exe_suffix",
			files:     []string{"bin/ffmpeg", "bin/ffmpeg.exe"},
			target:    "ffmpeg.exe",
			wantRel:   "bin/ffmpeg.exe",
			wantFound: true,
		},
		{
			name:      "depth_first_lexical",
			files:     []string{"a/ffmpeg", "b/ffmpeg"},
			target:    "ffmpeg",
			wantRel:   "a/ffmpeg",
			wantFound: true,
		},
		{
			name:      "directory_with_same_name_is_descended",
			files:     []string{"ffmpeg/bin/ffmpeg"},
			target:    "ffmpeg",
			wantRel:   "ffmpeg/bin/ffmpeg",
			wantFound: true,
		},
		{
			name:      "exact_match_only",
			files:     []string{"ffmpeg.exe", "ffmpeg-6.1", "FFMPEG2"},
			target:    "ffmpeg",
			wantFound: false,
		},
		{
			name:      "only_directory_matches",
			dirs:      []string{"x/ffmpeg"},
			target:    "ffmpeg",
			wantFound: false,
		},
		{
			name:      "empty_tree",
			target:    "ffmpeg",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeTree(t, root, tt.files)
			for _, d := range tt.dirs {
				if err := os.MkdirAll(filepath.Join(root, d), 0755); err != nil {
					t.Fatal(err)
				}
			}

			got, found, err := FindFile(root, tt.target)
			if err != nil {
				t.Fatalf("FindFile() error = %v", err)
			}
			if found != tt.wantFound {
				t.Fatalf("FindFile() found = %v, want %v", found, tt.wantFound)
			}
			if !tt.wantFound {
				if got != "" {
					t.Errorf("FindFile() path = %q, want empty", got)
				}
				return
			}
			want := filepath.Join(root, filepath.FromSlash(tt.wantRel))
			if got != want {
				t.Errorf("FindFile() = %s, want %s", got, want)
			}
		})
	}
}

func TestFindFileMissingRoot(t *testing.T) {
	_, found, err := FindFile(filepath.Join(t.TempDir(), "missing"), "ffmpeg")
	if err == nil {
		t.Error("expected error for missing root")
	}
	if found {
		t.Error("found should be false on error")
	}
}
