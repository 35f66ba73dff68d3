package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/milk9111/ninja/tilemap"
)

//go:embed *.json
var LevelsFS embed.FS

// Name is the document name of level id.
func Name(id int) string {
	return fmt.Sprintf("%d.json", id)
}

// Load fills m with level id. A copy under dir wins over the embedded one.
// If neither exists m is left empty and the error matches
// tilemap.ErrNotFound.
func Load(m *tilemap.Tilemap, dir string, id int) error {
	name := Name(id)
	if dir != "" {
		err := m.Load(filepath.Join(dir, name))
		if err == nil || !errors.Is(err, tilemap.ErrNotFound) {
			return err
		}
	}
	return m.LoadFS(LevelsFS, name)
}

// Count is the number of consecutive embedded levels starting at 0.
func Count() int {
	n := 0
	for {
		if _, err := fs.Stat(LevelsFS, Name(n)); err != nil {
			return n
		}
		n++
	}
}
