package scaffold

import (
	"fmt"
	"os/exec"
)

// gitInit runs `git init` with the working directory set to dir.
func gitInit(dir string) error {
	cmd := exec.Command("git", "init")
	cmd.Dir = dir

	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git init: %w\n%s", err, output)
	}
	return nil
}
