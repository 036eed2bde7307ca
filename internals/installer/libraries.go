package installer

import (
	"context"
	"path/filepath"

	"github.com/minepkg/mclaunch/internals/minecraft"
)

// InstallLibraries downloads every library required on the installer's platform that
// declares an artifact to its declared path below the libraries directory.
// Classifier only libraries are skipped, unsafe paths are reported as failures.
func (i *Installer) InstallLibraries(ctx context.Context, req InstallRequest, desc *minecraft.LaunchManifest) *StageReport {
	report := &StageReport{Stage: StageLibraries}
	l := req.layout()

	mgr := i.manager(StageLibraries)
	for _, lib := range desc.Libraries.Required(i.Platform).Artifacts() {
		artifact := lib.Downloads.Artifact
		if err := artifact.CheckPath(); err != nil {
			report.reject(artifact.URL, artifact.Path, err)
			continue
		}
		if size, err := artifact.Size.Int64(); err == nil {
			report.Size += size
		}
		dir := l.LibraryDir(artifact.Dir())
		if i.exists(filepath.Join(dir, artifact.FileName())) {
			report.Skipped++
			continue
		}
		mgr.AddURL(artifact.URL, dir, artifact.FileName())
	}

	report.merge(mgr.Start(ctx))
	return report
}
