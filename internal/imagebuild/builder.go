package imagebuild

import (
	"context"
	"fmt"
	"io"

	"bootware/internal/containerizer"
	"bootware/internal/template"
	"bootware/pkg/logging"
)

const builderSubsystem = "Builder"

// Builder builds distro images one after another and stops at the first
// failure.
type Builder struct {
	runtime containerizer.ContainerRuntime
	engine  *template.Engine
	options Options
	out     io.Writer
}

// NewBuilder validates the templates in options and creates a builder.
func NewBuilder(runtime containerizer.ContainerRuntime, options Options, out io.Writer) (*Builder, error) {
	if options.Context == "" {
		options.Context = "."
	}

	b := &Builder{
		runtime: runtime,
		engine:  template.New(),
		options: options,
		out:     out,
	}

	probe := b.templateContext(BuildTarget{})
	for name, text := range map[string]string{"build_file": options.BuildFile, "image_tag": options.ImageTag} {
		if text == "" {
			return nil, fmt.Errorf("%s template must not be empty", name)
		}
		if err := b.engine.ValidateContext(text, probe); err != nil {
			return nil, fmt.Errorf("invalid %s template: %w", name, err)
		}
	}

	return b, nil
}

// Spec renders the build spec for a target without running it.
func (b *Builder) Spec(target BuildTarget) (containerizer.BuildSpec, error) {
	ctx := b.templateContext(target)

	file, err := b.engine.Render("build_file", b.options.BuildFile, ctx)
	if err != nil {
		return containerizer.BuildSpec{}, err
	}
	tag, err := b.engine.Render("image_tag", b.options.ImageTag, ctx)
	if err != nil {
		return containerizer.BuildSpec{}, err
	}

	return containerizer.BuildSpec{
		File:     file,
		Tag:      tag,
		Platform: "linux/" + target.Arch,
		NoCache:  !target.Cache,
		BuildArgs: []containerizer.BuildArg{
			{Name: "skip", Value: joinRoles(target.Skip, "none")},
			{Name: "tags", Value: joinRoles(target.Tags, "all")},
			{Name: "test", Value: "true"},
		},
		Context: b.options.Context,
	}, nil
}

// Build runs every target in order. The first failure is returned as a
// *BuildError and no later target is built.
func (b *Builder) Build(ctx context.Context, targets []BuildTarget) error {
	runtimeName := b.runtime.Name()
	logging.Info(builderSubsystem, "Building %d images with %s", len(targets), runtimeName)

	for _, target := range targets {
		spec, err := b.Spec(target)
		if err != nil {
			return &BuildError{Distro: target.Distro, Runtime: runtimeName, Err: err}
		}

		logging.Debug(builderSubsystem, "Building %s from %s", spec.Tag, spec.File)
		if err := b.runtime.BuildImage(ctx, spec); err != nil {
			logging.Error(builderSubsystem, err, "Build for %s failed", target.Distro)
			return &BuildError{Distro: target.Distro, Runtime: runtimeName, Err: err}
		}

		fmt.Fprintf(b.out, "End to end test %s passed.\n", target.Distro)
	}

	fmt.Fprintln(b.out, "All end to end tests passed.")
	return nil
}

func (b *Builder) templateContext(target BuildTarget) map[string]interface{} {
	return template.MergeContexts(
		template.FromStrings(b.options.Vars),
		map[string]interface{}{
			"Distro": target.Distro,
			"Arch":   target.Arch,
		},
	)
}
