// Package open launches links with the platform's default handler or a chosen application.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/tunesearch-cli/tunesearch/constant"
)

// Start opens url with the default handler without waiting for it.
func Start(url string) error {
	return StartWith(url, "")
}

// StartWith opens url with app, or the default handler when app is empty, without waiting for it.
func StartWith(url, app string) error {
	var (
		cmd *exec.Cmd
		ok  bool
	)

	if app == "" {
		cmd, ok = command(runtime.GOOS, url)
	} else {
		cmd, ok = commandWith(runtime.GOOS, url, app)
	}

	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	// Reap the handler in the background; its exit status is not interesting.
	go func() { _ = cmd.Wait() }()
	return nil
}

// Browser returns a launcher bound to app.
func Browser(app string) func(string) error {
	return func(url string) error {
		return StartWith(url, app)
	}
}

func command(goos, url string) (*exec.Cmd, bool) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", url), true
	case constant.Darwin:
		return exec.Command("open", url), true
	case constant.Linux:
		return exec.Command("xdg-open", url), true
	case constant.Android:
		return exec.Command("termux-open-url", url), true
	default:
		return nil, false
	}
}

func commandWith(goos, url, app string) (*exec.Cmd, bool) {
	switch goos {
	case constant.Windows:
		// cmd's start treats & as a command separator.
		escaped := strings.ReplaceAll(url, "&", "^&")
		return exec.Command("cmd", "/C", "start", "", app, escaped), true
	case constant.Darwin:
		return exec.Command("open", "-a", app, url), true
	case constant.Linux:
		return exec.Command(app, url), true
	case constant.Android:
		return exec.Command("termux-open", "--choose", url), true
	default:
		return nil, false
	}
}
