package modules

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/louisbranch/avatarpick/internal/services/web/modules/devsession"
	"github.com/louisbranch/avatarpick/internal/services/web/modules/home"
	"github.com/louisbranch/avatarpick/internal/services/web/modules/setavatar"
)

// DefaultModules returns the modules served by the web service.
func DefaultModules() []Module {
	return []Module{
		home.New(),
		setavatar.New(),
	}
}

// DevModules returns modules only served when dev sessions are enabled.
func DevModules() []Module {
	return []Module{
		devsession.New(),
	}
}

// Compose mounts every module on root, rejecting duplicate prefixes. A
// module prefix is served both with and without its trailing slash.
func Compose(root *http.ServeMux, deps Dependencies, features []Module) error {
	if root == nil {
		return fmt.Errorf("root mux is required")
	}
	seen := make(map[string]string)
	for _, feature := range features {
		if feature == nil {
			return fmt.Errorf("module is nil")
		}
		mount, err := feature.Mount(deps)
		if err != nil {
			return fmt.Errorf("mount module %q: %w", feature.ID(), err)
		}
		prefix := normalizePrefix(mount.Prefix)
		if prefix == "" {
			return fmt.Errorf("mount module %q: prefix is required", feature.ID())
		}
		if mount.Handler == nil {
			return fmt.Errorf("mount module %q: handler is required", feature.ID())
		}
		if previous, ok := seen[prefix]; ok {
			return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()
		root.Handle(prefix, mount.Handler)
		if exact := strings.TrimSuffix(prefix, "/"); exact != "" {
			root.Handle(exact, mount.Handler)
		}
	}
	return nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}
