// Package lockfile produces and reads requirements.txt, the fully pinned,
// hash-annotated lock file compiled from pyproject.toml by pip-compile.
package lockfile
