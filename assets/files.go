package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed manifest.yaml
var embedded embed.FS

// Files resolves asset paths against a data directory on disk, falling back
// to the copies embedded in the binary.
type Files struct {
	disk fs.FS
}

// Open returns Files rooted at dir. An empty dir uses only embedded files.
func Open(dir string) *Files {
	f := &Files{}
	if dir != "" {
		f.disk = os.DirFS(dir)
	}
	return f
}

func (f *Files) ReadFile(name string) ([]byte, error) {
	clean := cleanAssetPath(name)
	if f.disk != nil {
		data, err := fs.ReadFile(f.disk, clean)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("assets: read %s: %w", clean, err)
		}
	}
	data, err := embedded.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", clean, err)
	}
	return data, nil
}

// Manifest loads manifest.yaml.
func (f *Files) Manifest() (*Manifest, error) {
	data, err := f.ReadFile("manifest.yaml")
	if err != nil {
		return nil, err
	}
	return ParseManifest(data)
}

// FramePath is the path of image i in a numbered sequence directory.
func FramePath(dir string, i int) string {
	return path.Join(dir, fmt.Sprintf("%d.png", i))
}

func cleanAssetPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return strings.TrimPrefix(path.Clean(s), "/")
}
