package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/tinyshell/tinysh/core/sys"
)

var dirColor = color.New(color.FgBlue, color.Bold)

// Ls lists directory contents.
func Ls(p *sys.Proc) int {
	cmd := &SimpleCommand{
		Use:   "ls [-al] [DIR]...",
		Short: "List directory contents.",
	}

	opts := cmd.Flags()
	showAll := opts.Bool('a', "include entries starting with .")
	long := opts.Bool('l', "use a long listing format")

	return cmd.Run(p, func() int {
		dirs := opts.Args()
		if len(dirs) == 0 {
			wd, err := p.Sys.Getwd()
			if err != nil {
				fmt.Fprintf(p.Stderr, "ls: %v\n", err)
				return 1
			}
			dirs = []string{wd}
		}

		status := 0
		for i, dir := range dirs {
			if len(dirs) > 1 {
				if i > 0 {
					fmt.Fprintln(p.Stdout)
				}
				fmt.Fprintf(p.Stdout, "%s:\n", dir)
			}
			if err := listDir(p, dir, *showAll, *long); err != nil {
				fmt.Fprintf(p.Stderr, "ls: %v\n", err)
				status = 1
			}
		}
		return status
	})
}

func listDir(p *sys.Proc, dir string, showAll, long bool) error {
	infos, err := afero.ReadDir(p.FS, dir)
	if err != nil {
		return err
	}

	if long {
		tw := tabwriter.NewWriter(p.Stdout, 8, 8, 4, ' ', 0)
		defer tw.Flush()

		for _, f := range infos {
			if !showAll && strings.HasPrefix(f.Name(), ".") {
				continue
			}
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
				f.Mode().String(), f.Size(), f.ModTime().Format("Jan _2 15:04"), lsName(f.Name(), f.IsDir()))
		}
		return nil
	}

	for _, f := range infos {
		if !showAll && strings.HasPrefix(f.Name(), ".") {
			continue
		}
		fmt.Fprintln(p.Stdout, lsName(f.Name(), f.IsDir()))
	}
	return nil
}

func lsName(name string, isDir bool) string {
	if isDir {
		return dirColor.Sprint(name)
	}
	return name
}

func init() {
	mustRegister("ls", Ls, true)
}
