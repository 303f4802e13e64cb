package hashing

import "path/filepath"

// Paths are the four on-disk locations a labelled terminal owns, per spec §3/§4.2.
type Paths struct {
	// Out is the terminal's root directory, rooted at either the run's out tree or, for
	// an external module, a separate external-module workspace.
	Out string
	// Dest is the task body's scratch working directory, created lazily by Context.Dest.
	Dest string
	// Meta is the persisted CachedRecord file.
	Meta string
	// Log holds captured stdio for the terminal's evaluation.
	Log string
}

// ResolvePaths computes Paths for a labelled terminal whose rendered segments are
// segmentsPath, optionally prefixed by foreignPrefix for a cross-module reference. The
// caller picks root ahead of time: the run's out tree for a local module, or the
// external-module workspace root when the terminal is external.
func ResolvePaths(root string, foreignPrefix string, segmentsPath string) Paths {
	effective := segmentsPath
	if foreignPrefix != "" {
		effective = filepath.Join(foreignPrefix, segmentsPath)
	}
	out := filepath.Join(root, effective)
	return Paths{
		Out:  out,
		Dest: filepath.Join(out, "dest"),
		Meta: filepath.Join(out, "meta.json"),
		Log:  filepath.Join(out, "log"),
	}
}
