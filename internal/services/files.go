package services

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Upload folders under the static root.
const (
	CertificatesDir    = "certificates_pdf"
	ChecklistPhotosDir = "checklist-photos"
	ReportsDir         = "reports"
	StaticURLPrefix    = "/api/static"
)

// Files maps uploads to paths under the static directory.
type Files struct {
	Root string
}

// Path returns where name is stored inside dir, creating dir if needed.
func (f Files) Path(dir, name string) (string, error) {
	full := filepath.Join(f.Root, dir)
	if err := os.MkdirAll(full, 0o755); err != nil {
		return "", errors.Wrapf(err, "create %s", full)
	}
	return filepath.Join(full, filepath.Base(name)), nil
}

func (f Files) URL(dir, name string) string {
	return StaticURLPrefix + "/" + dir + "/" + filepath.Base(name)
}

func (f Files) Exists(path string) bool {
	if path == "" {
		return false
	}
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

// UniqueName keeps the extension of original and replaces the rest.
func UniqueName(prefix, original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return prefix + "_" + uuid.NewString() + ext
}

func HasExt(name string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// SaveFunc writes an uploaded file to path. Handlers pass a closure over
// fiber's Ctx.SaveFile.
type SaveFunc func(path string) error

// Upload is a received multipart file.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Save        SaveFunc
}

// store saves u into dir under name and returns the disk path and public URL.
func (f Files) store(u Upload, dir, name string) (string, string, error) {
	path, err := f.Path(dir, name)
	if err != nil {
		return "", "", err
	}
	if err := u.Save(path); err != nil {
		return "", "", errors.Wrapf(err, "save %s", path)
	}
	return path, f.URL(dir, name), nil
}
