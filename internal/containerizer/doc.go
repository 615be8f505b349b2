// Package containerizer drives container runtimes for the end to end image
// builds of bootware.
//
// Docker and Podman are supported through their command line clients, which
// share the same build syntax. The runtime is detected once per invocation by
// probing "<runtime> --version" in DefaultRuntimeCandidates order, and the
// result is reused for every build.
//
// # Usage Example
//
//	name, err := containerizer.DetectRuntime(ctx, containerizer.DefaultRuntimeCandidates, nil)
//	if err != nil {
//	    return err
//	}
//
//	runtime, err := containerizer.NewContainerRuntime(name, os.Stdout, os.Stderr)
//	if err != nil {
//	    return err
//	}
//
//	err = runtime.BuildImage(ctx, containerizer.BuildSpec{
//	    File:     "test/e2e/debian.dockerfile",
//	    Tag:      "docker.io/scruffaluff/bootware:debian",
//	    Platform: "linux/amd64",
//	    NoCache:  true,
//	    Context:  ".",
//	})
//
// Build output is streamed to the given writers as it is produced.
package containerizer
