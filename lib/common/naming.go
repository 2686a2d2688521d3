package common

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/orchardkit/orchard/lib/model"
)

var alphanumericRE = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// IsAlphanumeric reports whether s is non-empty and contains only ASCII
// letters and digits.
func IsAlphanumeric(s string) bool {
	return alphanumericRE.MatchString(s)
}

// SplitSpec parses an apple spec in the form color[:size]. Empty components
// fall back to the defaults.
func SplitSpec(defaults model.Apple, spec string) (model.Apple, error) {
	result := defaults

	if spec == "" {
		return result, nil
	}

	pieces := strings.Split(spec, ":")
	if len(pieces) > 2 {
		return result, errors.Errorf("invalid apple spec '%v': expected color[:size]", spec)
	}

	if pieces[0] != "" {
		result.Color = pieces[0]
	}

	if len(pieces) == 2 && pieces[1] != "" {
		result.Size = pieces[1]
	}

	return result, nil
}
