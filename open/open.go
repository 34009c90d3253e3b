// Package open hands a media URL to the system's default handler or to a
// named application.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Start opens link with the default handler without waiting for it.
func Start(link string) error {
	return StartWith(link, "")
}

// StartWith opens link with app, or with the default handler when app is empty.
func StartWith(link, app string) error {
	argv, ok := command(runtime.GOOS, link, app)
	if !ok {
		return fmt.Errorf("opening links is not supported on %s", runtime.GOOS)
	}
	return exec.Command(argv[0], argv[1:]...).Start()
}

// command returns the argv that opens link on goos.
func command(goos, link, app string) ([]string, bool) {
	switch goos {
	case "windows":
		if app != "" {
			// start treats & as a command separator
			return []string{"cmd", "/C", "start", "", app, strings.ReplaceAll(link, "&", "^&")}, true
		}
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return []string{rundll, "url.dll,FileProtocolHandler", link}, true
	case "darwin":
		if app != "" {
			return []string{"open", "-a", app, link}, true
		}
		return []string{"open", link}, true
	case "linux", "freebsd", "openbsd", "netbsd":
		if app != "" {
			return []string{app, link}, true
		}
		return []string{"xdg-open", link}, true
	case "android":
		return []string{"termux-open", link}, true
	default:
		return nil, false
	}
}
