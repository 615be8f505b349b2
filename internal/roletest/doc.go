// Package roletest runs the shell based integration tests of bootware roles.
//
// A role catalog lists every role with optional skip conditions and the
// commands that prove the role installed correctly. A run loads the catalog
// once, filters it by allow and deny lists, and then walks it in declaration
// order:
//
//  1. The Matcher decides whether a role is skipped on the current system.
//  2. The Selector picks the commands for the system's OS.
//  3. The Executor runs each command as "<shell> -c <command>".
//  4. The Reporter prints "testing: <name> -> pass|fail|skip".
//
// Every command of a role runs even when an earlier one fails. The run fails
// when any role failed; skipped roles never fail a run.
//
// # Catalog Format
//
//	[
//	  {"name": "bat", "tests": ["bat --version"]},
//	  {"name": "docker", "skip": [{"os": "linux", "arch": "arm64"}],
//	   "tests": {"debian": ["docker --version"], "default": ["podman --version"]}}
//	]
//
// YAML with the same shape is accepted as well.
//
// # Test Selection
//
// For a per OS test map the exact OS key wins. Linux distros then fall back to
// the "linux" key, and every system finally falls back to "default". Which OS
// names count as Linux is controlled by a versioned DistroSet.
package roletest
