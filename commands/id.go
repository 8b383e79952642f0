package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/tinyshell/tinysh/core/sys"
)

// uidResolver maps uids to names using /etc/passwd, falling back to the
// numeric value.
func uidResolver(fsys afero.Fs) func(int) string {
	mapping := map[int]string{
		0: "root", // seed in case the passwd file is unreadable.
	}

	resolve := func(uid int) string {
		if resolved, ok := mapping[uid]; ok {
			return resolved
		}
		return strconv.Itoa(uid)
	}

	passwdBytes, err := afero.ReadFile(fsys, "/etc/passwd")
	if err != nil {
		return resolve
	}

	for _, line := range strings.Split(string(passwdBytes), "\n") {
		// name:X:uid:
		entry := strings.Split(line, ":")
		if len(entry) < 3 {
			continue
		}
		if uid, err := strconv.Atoi(entry[2]); err == nil {
			mapping[uid] = entry[0]
		}
	}

	return resolve
}

// Id prints the real user and group of the current process.
func Id(p *sys.Proc) int {
	cmd := &SimpleCommand{
		Use:   "id",
		Short: "Print user and group identity.",
	}

	return cmd.Run(p, func() int {
		resolve := uidResolver(p.FS)
		uid, gid := os.Getuid(), os.Getgid()

		fmt.Fprintf(p.Stdout, "uid=%d(%s) gid=%d\n", uid, resolve(uid), gid)
		return 0
	})
}

func init() {
	mustRegister("id", Id, true)
}
