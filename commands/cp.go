package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tinyshell/tinysh/core/sys"
)

// Cp copies a single file. Copying into an existing directory keeps the
// source's base name.
func Cp(p *sys.Proc) int {
	cmd := &SimpleCommand{
		Use:   "cp SOURCE DEST",
		Short: "Copy a file.",
	}

	return cmd.Run(p, func() int {
		args := cmd.Flags().Args()
		if len(args) != 2 {
			fmt.Fprintln(p.Stderr, "cp: expected SOURCE and DEST operands")
			return 1
		}
		src, dst := args[0], args[1]

		if err := copyFile(p.FS, src, dst); err != nil {
			fmt.Fprintf(p.Stderr, "cp: %v\n", err)
			return 1
		}
		return 0
	})
}

func copyFile(fsys afero.Fs, src, dst string) error {
	srcInfo, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if srcInfo.IsDir() {
		return fmt.Errorf("%s: is a directory", src)
	}

	if isDir, _ := afero.DirExists(fsys, dst); isDir {
		dst = filepath.Join(dst, filepath.Base(src))
	}

	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func init() {
	mustRegister("cp", Cp, true)
}
