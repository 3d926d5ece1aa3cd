package browser

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		wantErr bool
	}{
		{"directory page", "https://annuaire-entreprises.data.gouv.fr/entreprise/552032534", false},
		{"plain http", "http://example.com", false},
		{"absent marker", "-", true},
		{"empty", "", true},
		{"anchor", "#", true},
		{"other scheme", "javascript:alert(1)", true},
		{"file url", "file:///etc/passwd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.link)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate(%q) error = %v, wantErr %v", tt.link, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidLink) {
				t.Errorf("Validate(%q) error = %v, want ErrInvalidLink", tt.link, err)
			}
		})
	}
}

func TestCommand(t *testing.T) {
	const link = "https://example.com/a?b=c"

	tests := []struct {
		name     string
		goos     string
		browser  string
		wantArgs []string
		wantErr  bool
	}{
		{"linux", "linux", "", []string{"xdg-open", link}, false},
		{"macOS", "darwin", "", []string{"open", link}, false},
		{"windows", "windows", "", []string{"rundll32", "url.dll,FileProtocolHandler", link}, false},
		{"browser variable wins", "linux", "firefox --new-tab", []string{"firefox", "--new-tab", link}, false},
		{"unsupported", "plan9", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Opener{goos: tt.goos, browser: tt.browser}
			cmd, err := o.Command(link)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Command() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(cmd.Args) != len(tt.wantArgs) {
				t.Fatalf("Args = %q, want %q", cmd.Args, tt.wantArgs)
			}
			for i := range tt.wantArgs {
				if cmd.Args[i] != tt.wantArgs[i] {
					t.Errorf("Args[%d] = %q, want %q", i, cmd.Args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestCommand_RejectsInvalidLink(t *testing.T) {
	o := &Opener{goos: "linux"}
	if _, err := o.Command("-"); !errors.Is(err, ErrInvalidLink) {
		t.Errorf("Command(\"-\") error = %v, want ErrInvalidLink", err)
	}
}
