package exiftool

import (
	"fmt"

	"dtc-go/internal/dtc"
)

// BrewInstaller installs exiftool through Homebrew. It is the
// "package-manager bootstrap" collaborator: its output is forwarded to
// the sink but beyond "succeeds or the tool remains absent" it makes
// no guarantees.
type BrewInstaller struct {
	brew *Resolver
	cmd  dtc.CommandRunner
	pkg  string
}

// NewBrewInstaller creates an installer that shells out to brew.
func NewBrewInstaller(cmd dtc.CommandRunner) *BrewInstaller {
	return &BrewInstaller{
		brew: NewResolver("brew"),
		cmd:  cmd,
		pkg:  "exiftool",
	}
}

// Install runs "brew install exiftool", streaming its output to the
// sink, and reports whether the install command succeeded.
func (i *BrewInstaller) Install(emit dtc.LineSink) bool {
	brewPath, ok := i.brew.Resolve()
	if !ok {
		emit("Homebrew not found. Install from https://brew.sh/")
		return false
	}

	emit(fmt.Sprintf("%s install %s", brewPath, i.pkg))
	exitCode, err := i.cmd.Run(brewPath, []string{"install", i.pkg}, emit)
	if err != nil {
		emit(fmt.Sprintf("ERROR: %v", err))
		return false
	}
	return exitCode == 0
}

// NopInstaller never installs anything. Used when the configuration
// disables the bootstrap.
type NopInstaller struct{}

func (NopInstaller) Install(dtc.LineSink) bool { return false }

// Compile-time checks that both installers implement dtc.ToolInstaller
var (
	_ dtc.ToolInstaller = (*BrewInstaller)(nil)
	_ dtc.ToolInstaller = NopInstaller{}
)

// NewBrewInstallerForTests creates an installer with an injectable
// brew resolver and command runner.
func NewBrewInstallerForTests(brew *Resolver, cmd dtc.CommandRunner) *BrewInstaller {
	return &BrewInstaller{brew: brew, cmd: cmd, pkg: "exiftool"}
}
