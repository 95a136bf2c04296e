package requirements

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Warning is a non-fatal finding about a requirement's version constraint.
type Warning struct {
	Spec    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Spec, w.Message)
}

// operator rewrites from requirement syntax to semver constraint syntax.
var constraintRewrites = []struct{ from, to string }{
	{"==", "="},
	{"~=", "~"},
}

// Lint checks whether each requirement's version constraint parses as a
// semver constraint. Findings are warnings only: many legitimate package
// versions (post-releases, epochs) are not semver, and the installer tool is
// the final authority.
func Lint(reqs []Requirement) []Warning {
	var warnings []Warning
	for _, req := range reqs {
		if req.Constraint == "" {
			continue
		}
		if _, err := semver.NewConstraint(rewriteConstraint(req.Constraint)); err != nil {
			warnings = append(warnings, Warning{
				Spec:    req.Spec(),
				Message: fmt.Sprintf("constraint %q is not a semver range: %v", req.Constraint, err),
			})
		}
	}
	return warnings
}

func rewriteConstraint(c string) string {
	for _, r := range constraintRewrites {
		if strings.HasPrefix(c, r.from) {
			return r.to + strings.TrimPrefix(c, r.from)
		}
	}
	return c
}
