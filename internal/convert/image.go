package convert

import (
	"fmt"
	"io"
	"os"
)

// ImageCopier copies image files unchanged, keeping permission bits and
// modification time.
type ImageCopier struct{}

func (c *ImageCopier) Convert(src, dst string) (Action, error) {
	if err := CopyFile(src, dst); err != nil {
		return "", err
	}
	return ActionCopy, nil
}

// CopyFile copies src to dst byte for byte and carries over the source
// mode and modification time. dst is created or truncated.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close destination: %w", err)
	}

	// OpenFile only applies the mode to new files.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod destination: %w", err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("chtimes destination: %w", err)
	}
	return nil
}
