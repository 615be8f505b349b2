// Package imagebuild runs the end to end tests of bootware by building one
// container image per Linux distro.
//
// Each image build installs bootware inside the container with the selected
// roles, so a successful build is a passing end to end test. Builds run
// sequentially with a runtime detected once by the caller. The first failing
// build aborts the run with a *BuildError; later distros are never built.
package imagebuild
