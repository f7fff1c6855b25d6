package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// DirSource reads pages from <dir>/<number>.html. A missing file is an
// empty page, like a page that is not on air.
type DirSource struct {
	fs      afero.Fs
	dir     string
	charset string
}

// NewDirSource creates a source rooted at dir on fsys
func NewDirSource(fsys afero.Fs, dir, charset string) *DirSource {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if charset == "" {
		charset = DefaultCharset
	}
	return &DirSource{fs: fsys, dir: dir, charset: charset}
}

// Fetch reads and cleans a page file
func (d *DirSource) Fetch(ctx context.Context, number int) (string, error) {
	if err := ValidateNumber(number); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", Transport(number, err)
	}

	path := filepath.Join(d.dir, fmt.Sprintf("%d.html", number))
	raw, err := afero.ReadFile(d.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", EmptyPage(number)
	}
	if err != nil {
		return "", Transport(number, fmt.Errorf("read %s: %w", path, err))
	}

	return Parse(number, raw, d.charset, "")
}
