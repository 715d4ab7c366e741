package contracts

import (
	"path/filepath"
	"runtime"
)

// Platform captures the host-specific facts needed to find or provision SteamCMD.
// WellKnownPath must name the executable inside the SteamCMD install itself, since
// workshop downloads are read from the steamapps folder next to it. Launcher scripts
// such as the one Debian's steamcmd package puts in /usr/games do not qualify.
type Platform struct {
	Executable      string
	WellKnownPath   string
	BootstrapURL    string
	BootstrapName   string
	LocalInstallDir string
}

var (
	WindowsPlatform = Platform{
		Executable:      "steamcmd.exe",
		WellKnownPath:   `C:\Program Files\TCAdmin2\Monitor\Tools\SteamCmd\steamcmd.exe`,
		BootstrapURL:    "https://steamcdn-a.akamaihd.net/client/installer/steamcmd.zip",
		BootstrapName:   "steamcmd.zip",
		LocalInstallDir: "SteamCMD",
	}
	LinuxPlatform = Platform{
		Executable:      "steamcmd.sh",
		BootstrapURL:    "https://steamcdn-a.akamaihd.net/client/installer/steamcmd_linux.tar.gz",
		BootstrapName:   "steamcmd_linux.tar.gz",
		LocalInstallDir: "SteamCMD",
	}
	DarwinPlatform = Platform{
		Executable:      "steamcmd.sh",
		BootstrapURL:    "https://steamcdn-a.akamaihd.net/client/installer/steamcmd_osx.tar.gz",
		BootstrapName:   "steamcmd_osx.tar.gz",
		LocalInstallDir: "SteamCMD",
	}
)

func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "windows":
		return WindowsPlatform
	case "darwin":
		return DarwinPlatform
	default:
		return LinuxPlatform
	}
}

func parentDirectory(path string) string {
	return filepath.Dir(path)
}
