package roletest

// Selector resolves the commands a role runs on a system.
type Selector struct {
	distros DistroSet
}

// NewSelector creates a selector that resolves the "linux" key through distros.
func NewSelector(distros DistroSet) *Selector {
	return &Selector{distros: distros}
}

// SelectCommands returns the ordered commands for role on system. A flat
// list applies everywhere. An OS keyed mapping prefers the exact OS, then
// "linux" for Linux distros, then "default". No match yields an empty list.
func (s *Selector) SelectCommands(role Role, system System) []string {
	switch role.Tests.Kind() {
	case TestSetFlat:
		return append([]string(nil), role.Tests.Flat()...)
	case TestSetByOS:
		keys := []string{system.OS, defaultKey}
		if s.distros.Contains(system.OS) {
			keys = []string{system.OS, linuxKey, defaultKey}
		}
		for _, key := range keys {
			if commands, ok := role.Tests.ByOS(key); ok {
				return append([]string(nil), commands...)
			}
		}
		return nil
	default:
		return nil
	}
}
