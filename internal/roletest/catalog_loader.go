package roletest

import (
	"fmt"
	"os"
	"strings"

	"bootware/pkg/logging"

	"sigs.k8s.io/yaml"
)

const catalogSubsystem = "Catalog"

// CatalogLoadError reports a catalog that cannot be used. It is fatal:
// no role runs when loading fails.
type CatalogLoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *CatalogLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to load role catalog %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to load role catalog %s: %s", e.Path, e.Reason)
}

func (e *CatalogLoadError) Unwrap() error {
	return e.Err
}

// LoadCatalog reads the role catalog at path. Both JSON and YAML are
// accepted; declaration order is preserved.
func LoadCatalog(path string) ([]Role, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CatalogLoadError{Path: path, Reason: "cannot read file", Err: err}
	}

	roles, err := ParseCatalog(data)
	if err != nil {
		if loadErr, ok := err.(*CatalogLoadError); ok {
			loadErr.Path = path
			return nil, loadErr
		}
		return nil, err
	}

	logging.Info(catalogSubsystem, "Loaded %d roles from %s", len(roles), path)
	return roles, nil
}

// ParseCatalog decodes and validates catalog content.
func ParseCatalog(data []byte) ([]Role, error) {
	var roles []Role
	if err := yaml.Unmarshal(data, &roles); err != nil {
		return nil, &CatalogLoadError{Reason: "malformed catalog", Err: err}
	}

	seen := make(map[string]int, len(roles))
	for i, role := range roles {
		if strings.TrimSpace(role.Name) == "" {
			return nil, &CatalogLoadError{Reason: fmt.Sprintf("role at index %d has no name", i)}
		}
		if first, dup := seen[role.Name]; dup {
			return nil, &CatalogLoadError{
				Reason: fmt.Sprintf("duplicate role name %q at index %d and %d", role.Name, first, i),
			}
		}
		seen[role.Name] = i
	}

	return roles, nil
}

// FilterRoles keeps the roles named in allow (when non-empty), then removes
// those named in deny. Catalog order is preserved.
func FilterRoles(roles []Role, allow, deny []string) []Role {
	allowed := toSet(allow)
	denied := toSet(deny)

	filtered := make([]Role, 0, len(roles))
	for _, role := range roles {
		if len(allowed) > 0 && !allowed[role.Name] {
			continue
		}
		if denied[role.Name] {
			continue
		}
		filtered = append(filtered, role)
	}

	logging.Debug(catalogSubsystem, "Filtered catalog from %d to %d roles", len(roles), len(filtered))
	return filtered
}

// RoleNames returns role names in catalog order.
func RoleNames(roles []Role) []string {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.Name)
	}
	return names
}

// LoadRoleNamesForCompletion returns the catalog's role names for shell
// completion. Errors yield an empty list so completion output stays clean.
func LoadRoleNamesForCompletion(path string) []string {
	roles, err := LoadCatalog(path)
	if err != nil {
		return []string{}
	}
	return RoleNames(roles)
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			set[v] = true
		}
	}
	return set
}
