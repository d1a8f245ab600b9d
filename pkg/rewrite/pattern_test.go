package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_Policies(t *testing.T) {
	tests := []struct {
		name      string
		policy    MatchPolicy
		line      string
		wantMatch bool
	}{
		{
			name:      "named_matches_face_diffuse",
			policy:    PolicyNamed,
			line:      "ps-t0 = ResourceFaceDiffuse",
			wantMatch: true,
		},
		{
			name:      "named_matches_prefixed_head_normal_map",
			policy:    PolicyNamed,
			line:      "ps-t3=ResourceSomeFaceHeadNormalMap.1024",
			wantMatch: true,
		},
		{
			name:      "named_rejects_novel_combination",
			policy:    PolicyNamed,
			line:      "ps-t1 = ResourceXFaceAltDiffuse",
			wantMatch: false,
		},
		{
			name:      "generalized_accepts_novel_combination",
			policy:    PolicyGeneralized,
			line:      "ps-t1 = ResourceXFaceAltDiffuse",
			wantMatch: true,
		},
		{
			name:      "empty_policy_behaves_like_generalized",
			policy:    "",
			line:      "ps-t1 = ResourceXFaceAltNormalMap",
			wantMatch: true,
		},
		{
			name:      "generalized_rejects_non_face_resource",
			policy:    PolicyGeneralized,
			line:      "ps-t0 = ResourceBodyDiffuse",
			wantMatch: false,
		},
		{
			name:      "case_insensitive",
			policy:    PolicyGeneralized,
			line:      "PS-T7 = RESOURCEFACEDIFFUSE",
			wantMatch: true,
		},
		{
			name:      "rewritten_line_never_rematches",
			policy:    PolicyGeneralized,
			line:      "this = ResourceFaceDiffuse.normal",
			wantMatch: false,
		},
		{
			name:      "anchored_rejects_trailing_garbage",
			policy:    PolicyGeneralized,
			line:      "ps-t0 = ResourceFaceDiffuse ; comment",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := Compile(tt.policy)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMatch, re.MatchString(tt.line))
		})
	}
}

func TestCompile_UnknownPolicy(t *testing.T) {
	_, err := Compile("fuzzy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown match policy")
}

func TestCompile_CaptureGroups(t *testing.T) {
	re, err := Compile(PolicyGeneralized)
	require.NoError(t, err)

	m := re.FindStringSubmatch("  ps-t0 = ResourceFaceDiffuse.normal")
	require.NotNil(t, m)
	assert.Equal(t, "  ", m[1])
	assert.Equal(t, "ResourceFaceDiffuse.normal", m[2])
}
