package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/nspcc-dev/txdump/cli/decode"
	"github.com/nspcc-dev/txdump/cli/shell"
	"github.com/nspcc-dev/txdump/pkg/config"
	"github.com/urfave/cli"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "TxDump\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// New creates a txdump instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "txdump"
	ctl.Version = config.Version
	ctl.Usage = "Transaction payload decoder"
	ctl.ErrWriter = os.Stderr

	ctl.Commands = append(ctl.Commands, decode.NewCommands()...)
	ctl.Commands = append(ctl.Commands, shell.NewCommands()...)
	return ctl
}
