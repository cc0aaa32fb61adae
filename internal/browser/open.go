package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Validate checks that raw is an absolute http or https URL.
func Validate(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("browser: parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("browser: unsupported url scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("browser: url %q has no host", raw)
	}
	return nil
}

// Open opens the specified URL in the user's default browser.
func Open(raw string) error {
	if err := Validate(raw); err != nil {
		return err
	}
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", raw).Start()
	case "linux":
		return exec.Command("xdg-open", raw).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", raw).Start()
	default:
		return fmt.Errorf("browser: unsupported OS: %s", runtime.GOOS)
	}
}
