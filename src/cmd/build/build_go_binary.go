package build

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"text/template"
	"time"

	log "github.com/sirupsen/logrus"
)

const constsPath = "github.com/bililive-go/douyin-params/src/consts"

var ldFlagsTmpl = template.Must(template.New("ldFlags").Parse(
	"{{.DebugBuildFlags}} " +
		"-X {{.ConstsPath}}.BuildTime={{.Now}} " +
		"-X {{.ConstsPath}}.AppVersion={{.AppVersion}} " +
		"-X {{.ConstsPath}}.GitHash={{.GitHash}}"))

func BuildGoBinary(isDev bool) error {
	goHostOS := os.Getenv("PLATFORM")
	if goHostOS == "" {
		goHostOS = runtime.GOOS
	}
	goHostArch := os.Getenv("ARCH")
	if goHostArch == "" {
		goHostArch = runtime.GOARCH
	}
	gcflags := ""
	debugBuildFlags := " -s -w "
	if isDev {
		gcflags = "all=-N -l"
		debugBuildFlags = ""
	}
	log.Infof("building douyin-params (Platform: %s, Arch: %s, GoVersion: %s, Dev: %v)",
		goHostOS, goHostArch, runtime.Version(), isDev)

	ldflags, err := genLdFlags(debugBuildFlags, getGitTagString(), getGitHash(), time.Now())
	if err != nil {
		return err
	}

	cmd := exec.Command(
		"go", "build",
		`-gcflags=`+gcflags,
		"-o", "bin/"+generateBinaryName(goHostOS, goHostArch),
		"-ldflags="+ldflags,
		"./src/cmd/douyin-params",
	)
	cmd.Env = append(
		os.Environ(),
		"GOOS="+goHostOS,
		"GOARCH="+goHostArch,
		"CGO_ENABLED=0",
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	log.Print(cmd.String())
	return cmd.Run()
}

func genLdFlags(debugBuildFlags, appVersion, gitHash string, now time.Time) (string, error) {
	var buf bytes.Buffer
	err := ldFlagsTmpl.Execute(&buf, map[string]string{
		"DebugBuildFlags": debugBuildFlags,
		"ConstsPath":      constsPath,
		"Now":             fmt.Sprintf("%d", now.Unix()),
		"AppVersion":      appVersion,
		"GitHash":         gitHash,
	})
	return buf.String(), err
}

func generateBinaryName(goHostOS string, goHostArch string) string {
	binaryName := "douyin-params-" + goHostOS + "-" + goHostArch
	if goHostOS == "windows" {
		binaryName += ".exe"
	}
	return binaryName
}

func getGitHash() string {
	cmd := exec.Command("git", "rev-parse", "HEAD")
	out, err := cmd.Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}

func getGitTagString() string {
	cmd := exec.Command("git", "describe", "--tags", "--always")
	out, err := cmd.Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}
