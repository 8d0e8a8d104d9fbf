package updater

import (
	"fmt"
	"log/slog"

	"github.com/blockguard-sf/rek/internal/branding"
)

// EnsureLatest performs the startup version gate. A newer published release
// stops the program with a pointer to the releases page. A failed check —
// offline, rate-limited, unparsable tag — is logged and treated as
// up-to-date so the tool stays usable without network access.
func (u *Updater) EnsureLatest(log *slog.Logger) error {
	release, err := u.CheckLatestVersion()
	if err != nil {
		log.Warn("version check failed", "error", err)
		return nil
	}

	available, err := IsUpdateAvailable(u.currentVersion, release.Version)
	if err != nil {
		log.Debug("could not compare versions", "error", err)
		return nil
	}

	if available {
		return fmt.Errorf(
			"install the latest %s for new features and improvements! %s",
			branding.CLIName(), branding.ReleasesURL())
	}
	return nil
}
