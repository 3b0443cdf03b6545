package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/kni85/stat-ts/pkg/errors"
)

// CheckVersionCompatibility checks if the library version satisfies the
// version an embedding tool was built against.
// Returns nil if compatible, error with details if not.
//
// Compatibility Rules:
//   - If either version is "main" (development build), compatibility check is skipped
//   - Major versions must match exactly
//   - Minor versions must match exactly
//   - Patch versions can differ (e.g., 1.2.0 is compatible with 1.2.5)
func CheckVersionCompatibility(libraryVersion, requiredVersion string) error {
	// Strip 'v' prefix if present for consistency
	libraryVersion = strings.TrimPrefix(libraryVersion, "v")
	requiredVersion = strings.TrimPrefix(requiredVersion, "v")

	// Skip version check for "main" (development builds)
	if libraryVersion == "main" || requiredVersion == "main" {
		return nil
	}

	librarySemver, err := semver.NewVersion(libraryVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid library version '%s'", libraryVersion)
	}

	requiredSemver, err := semver.NewVersion(requiredVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid required version '%s'", requiredVersion)
	}

	if librarySemver.Major() != requiredSemver.Major() {
		return errors.Newf(errors.ErrCodeVersionMismatch,
			"major version mismatch: library is %d.x.x but caller requires %d.x.x",
			librarySemver.Major(), requiredSemver.Major())
	}

	if librarySemver.Minor() != requiredSemver.Minor() {
		return errors.Newf(errors.ErrCodeVersionMismatch,
			"minor version mismatch: library is %d.%d.x but caller requires %d.%d.x",
			librarySemver.Major(), librarySemver.Minor(),
			requiredSemver.Major(), requiredSemver.Minor())
	}

	// Patch versions can differ, so we're compatible
	return nil
}
