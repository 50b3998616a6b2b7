package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
	AndroidCommand  = "am"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// AndroidDownloadsDir is where files land so they show up in the file manager
const AndroidDownloadsDir = "/sdcard/Download"

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// Indirections for tests
var (
	execCommand = exec.Command
	lookPath    = exec.LookPath
	goos        = runtime.GOOS
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if dirPath == "" {
		return fmt.Errorf("directory path is empty")
	}
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	if isAndroid() {
		return AndroidDownloadsDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Downloads"), nil
}

// isAndroid detects Android, including Fyne apps that run as libdist.so
func isAndroid() bool {
	return goos == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"
}

// RevealFile shows the file in the system file manager, selecting it where
// the platform supports that.
func RevealFile(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	switch goos {
	case OSDarwin:
		return execCommand(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return execCommand(ExplorerCommand, WindowsSelectParam+absPath).Run()
	case OSLinux:
		return revealLinux(absPath)
	case OSAndroid:
		return execCommand(AndroidCommand, "start", "-a", "android.intent.action.VIEW", "-d", "file://"+filepath.Dir(absPath)).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// revealLinux opens the parent directory; selection is not standardized on Linux
func revealLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	if err := execCommand(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := lookPath(fm); err == nil {
			return execCommand(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	switch goos {
	case OSDarwin:
		return execCommand(OpenCommand, absPath).Run()
	case OSWindows:
		return execCommand(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	case OSLinux:
		return execCommand(XDGOpenCommand, absPath).Run()
	case OSAndroid:
		return execCommand(AndroidCommand, "start", "-a", "android.intent.action.VIEW", "-d", "file://"+absPath, "-t", "application/pdf").Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", goos)
	}
}

func existingAbsPath(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path is empty")
	}
	if _, err := os.Stat(filePath); err != nil {
		return "", fmt.Errorf("file does not exist: %w", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}
