package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

type FileSink struct {
	fs  afero.Fs
	dir string
}

func NewFileSink(fs afero.Fs, dir string) *FileSink {
	return &FileSink{fs: fs, dir: dir}
}

// Write creates the backup directory on first use and writes name inside it.
func (s *FileSink) Write(ctx context.Context, name string, payload []byte) error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %w", domain.ErrBackupWrite, s.dir, err)
	}

	path := filepath.Join(s.dir, name)
	if err := afero.WriteFile(s.fs, path, payload, os.FileMode(0o644)); err != nil {
		return fmt.Errorf("%w: write %s: %w", domain.ErrBackupWrite, path, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(payload)).Msg("backup written")
	return nil
}
