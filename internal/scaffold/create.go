package scaffold

import (
	"log/slog"
)

// RunCreate drives one package-creation flow: prompt, validate, build.
// Validation and build failures are reported through the logger and abort
// only the current attempt — the caller's menu loop continues. The returned
// error is reserved for prompt-level failures (interrupt, closed terminal),
// which abort the whole loop.
func RunCreate(log *slog.Logger, def Defaults) error {
	m, err := PromptMetadata(def)
	if err != nil {
		return err
	}

	log.Debug("configuring the new package",
		"name", m.Name,
		"author", m.Author,
		"license", m.License,
		"git", m.Git,
		"directory", m.Directory,
	)

	if err := m.CheckConfig(); err != nil {
		log.Error(err.Error())
		return nil
	}
	log.Debug("the configuration data has been approved")

	result, err := NewBuilder(log).Build(m)
	if err != nil {
		log.Error(err.Error())
		return nil
	}

	log.Info("package created", "path", result.PackageRoot, "files", len(result.Files))
	return nil
}
