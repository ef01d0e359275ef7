package security

import (
	"errors"
	"testing"
)

func TestCheckAllowed(t *testing.T) {
	bad := []string{
		"rm -rf /",
		"rm -rf / --no-preserve-root",
		"mkfs.ext4 /dev/sda",
		"dd if=/dev/zero of=/dev/sda bs=4096",
		":(){ :|:& };:",
		"wipefs -a /dev/sda",
		"diskutil eraseDisk JHFS+ X disk2",
	}
	for _, s := range bad {
		if err := CheckAllowed(s); !errors.Is(err, ErrDangerous) {
			t.Fatalf("expected %q to be blocked, got %v", s, err)
		}
	}

	good := []string{
		"echo hello",
		"brew update && brew upgrade",
		"sudo mac-cleanup --force",
		"bash -c 'echo safe'",
	}
	for _, s := range good {
		if err := CheckAllowed(s); err != nil {
			t.Fatalf("expected %q to be allowed: %v", s, err)
		}
	}

	if err := CheckAllowed("   "); err == nil {
		t.Fatalf("expected empty command to be rejected")
	}
}

func TestRequiresPrivilege(t *testing.T) {
	yes := []string{
		"sudo softwareupdate --install --all",
		"sudo mac-cleanup --force",
		"brew update && sudo brew cleanup",
		"/usr/bin/sudo ls",
		"echo hi | doas tee /etc/motd",
		"sudo 'unterminated",
	}
	for _, s := range yes {
		if !RequiresPrivilege(s) {
			t.Fatalf("expected %q to require privilege", s)
		}
	}

	no := []string{
		"brew update && brew upgrade",
		"echo sudo",
		"solana airdrop 5",
		"pseudo-tool run",
	}
	for _, s := range no {
		if RequiresPrivilege(s) {
			t.Fatalf("expected %q not to require privilege", s)
		}
	}
}
