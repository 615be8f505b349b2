// Package template renders the build file and image tag templates of the end
// to end driver.
//
// Templates use text/template syntax plus the sprig function library, for
// example "docker.io/scruffaluff/bootware:{{ .Distro }}" or
// "{{ .Registry }}/bootware:{{ .Distro }}-{{ .Arch | lower }}". Rendering is
// strict: a template that refers to a missing variable fails instead of
// producing "<no value>".
package template
