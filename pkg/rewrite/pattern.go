package rewrite

import (
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// MatchPolicy selects which face-texture suffixes the line pattern accepts.
type MatchPolicy string

const (
	// PolicyNamed matches exactly the four suffixes the older framework
	// versions used for face slots.
	PolicyNamed MatchPolicy = "named"

	// PolicyGeneralized matches any Face...Diffuse or Face...NormalMap
	// combination. This is the default.
	PolicyGeneralized MatchPolicy = "generalized"
)

const (
	namedSuffixes       = `(?:FaceDiffuse|FaceHeadDiffuse|FaceHeadNormalMap|FaceNormalMap)`
	generalizedSuffixes = `Face\w*(?:Diffuse|NormalMap)`
)

// Compile builds the anchored, case-insensitive line pattern for the given
// policy. Group 1 captures the leading indentation, group 2 the right-hand
// resource identifier. The empty policy compiles as PolicyGeneralized.
func Compile(policy MatchPolicy) (*regexp.Regexp, error) {
	var suffixes string
	switch policy {
	case PolicyNamed:
		suffixes = `\w*` + namedSuffixes
	case PolicyGeneralized, "":
		suffixes = `\w*` + generalizedSuffixes
	default:
		return nil, errors.Errorf("unknown match policy %q", policy)
	}
	return regexp.Compile(`(?i)^(\s*)ps-t\d+\s*=\s*(Resource` + suffixes + `(?:[.\w]*)?)\s*$`)
}
