package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"enrichio/internal/ports"
)

// ErrInvalidLink is returned for links that are not absolute http(s) URLs
var ErrInvalidLink = errors.New("not a web link")

// Opener implements ports.LinkOpener with the system URL handler
type Opener struct {
	goos    string
	browser string
}

// Ensure Opener implements LinkOpener
var _ ports.LinkOpener = (*Opener)(nil)

// NewOpener creates an opener honouring $BROWSER when set
func NewOpener() *Opener {
	return &Opener{
		goos:    runtime.GOOS,
		browser: os.Getenv("BROWSER"),
	}
}

// Open launches the link without waiting for the browser to exit
func (o *Opener) Open(link string) error {
	cmd, err := o.Command(link)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Command builds the process that opens link
func (o *Opener) Command(link string) (*exec.Cmd, error) {
	if err := Validate(link); err != nil {
		return nil, err
	}

	if o.browser != "" {
		fields := strings.Fields(o.browser)
		return exec.Command(fields[0], append(fields[1:], link)...), nil
	}

	switch o.goos {
	case "darwin":
		return exec.Command("open", link), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", link), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", link), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}

// Validate checks that link is an absolute http or https URL
func Validate(link string) error {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidLink, link)
	}
	return nil
}
