package editor

import (
	"os"
	"testing"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestCommand_EditorVariables(t *testing.T) {
	tests := []struct {
		name     string
		vars     map[string]string
		wantArgs []string
	}{
		{
			name:     "EDITOR",
			vars:     map[string]string{"EDITOR": "hx", "VISUAL": "emacs"},
			wantArgs: []string{"hx", "/tmp/list.txt"},
		},
		{
			name:     "VISUAL fallback",
			vars:     map[string]string{"VISUAL": "emacs"},
			wantArgs: []string{"emacs", "/tmp/list.txt"},
		},
		{
			name:     "flags kept",
			vars:     map[string]string{"EDITOR": "code --wait"},
			wantArgs: []string{"code", "--wait", "/tmp/list.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Opener{lookup: env(tt.vars)}
			cmd, err := o.Command("/tmp/list.txt")
			if err != nil {
				t.Fatalf("Command() error = %v", err)
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

func TestDraft_RoundTrip(t *testing.T) {
	d, err := NewDraft("Danone\nLVMH\n")
	if err != nil {
		t.Fatalf("NewDraft() error = %v", err)
	}
	defer d.Remove()

	if err := os.WriteFile(d.Path, []byte("Danone\nLVMH\nCapgemini\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := d.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != "Danone\nLVMH\nCapgemini\n" {
		t.Errorf("Read() = %q", got)
	}

	if err := d.Remove(); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := os.Stat(d.Path); !os.IsNotExist(err) {
		t.Errorf("draft still exists after Remove: %v", err)
	}
}
