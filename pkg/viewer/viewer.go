package viewer

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Command returns the program and arguments that open path in the default
// image viewer of goos. Where the platform allows it the command waits for
// the viewer to be closed.
func Command(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{"-W", path}
	case "windows":
		return "cmd", []string{"/c", "start", "/wait", "", path}
	default:
		return "xdg-open", []string{path}
	}
}

// Show opens path and blocks until the viewer command returns or ctx is done.
// open -W and start /wait return once the viewer is closed; xdg-open usually
// returns as soon as the viewer has been launched.
func Show(ctx context.Context, path string) error {
	name, args := Command(runtime.GOOS, path)
	log.Debugf("Opening %s with %s %s", path, name, strings.Join(args, " "))

	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to open %s with %s: %w (%s)", path, name, err, strings.TrimSpace(string(out)))
	}
	return nil
}
