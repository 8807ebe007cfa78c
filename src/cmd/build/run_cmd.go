package build

import (
	"os"

	"github.com/alecthomas/kingpin"
	log "github.com/sirupsen/logrus"
)

// RunCmd parses the build subcommand from os.Args and returns the process exit code.
func RunCmd() int {
	app := kingpin.New("build", "Build helper for douyin-params.")
	app.Command("dev", "Build a debug binary.")
	app.Command("release", "Build a stripped release binary.")

	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		log.Error(err)
		return 1
	}
	if err = BuildGoBinary(cmd == "dev"); err != nil {
		log.WithError(err).Error("build failed")
		return 1
	}
	return 0
}
