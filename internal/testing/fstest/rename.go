package fstest

import (
	"io/fs"
	"strings"

	"github.com/spf13/afero"
)

type RenameErrorFs struct {
	afero.MemMapFs
	DenyPath string
}

func (m *RenameErrorFs) Rename(oldname, newname string) error {
	if strings.HasPrefix(newname, m.DenyPath) {
		return fs.ErrPermission
	}
	return m.MemMapFs.Rename(oldname, newname)
}
