package cmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claude-profile/config"
	"claude-profile/helpers"
)

func TestRepoCmd(t *testing.T) {
	tests := map[string]struct {
		url     string
		want    string
		wantErr error
	}{
		"plain": {
			url:  "https://github.com/acme/agents",
			want: "https://github.com/acme/agents",
		},
		"trailing slash and whitespace": {
			url:  "  https://github.com/acme/agents/ ",
			want: "https://github.com/acme/agents",
		},
		"not github": {
			url:     "https://gitlab.com/acme/agents",
			wantErr: helpers.ErrInvalidRepositoryReference,
		},
		"too many segments": {
			url:     "https://github.com/acme/agents/tree/main",
			wantErr: helpers.ErrInvalidRepositoryReference,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t)

			out, err := h.run(t, "repo", tc.url)
			cfg, loadErr := config.Load(h.configPath)
			require.NoError(t, loadErr)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.False(t, cfg.HasRepository(), "nothing is saved on error")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg.Repository)
			assert.False(t, cfg.LastUpdated.IsZero())
			assert.Contains(t, out, "Repository set to: "+tc.want)
		})
	}
}

func TestRepoCmdRequiresURL(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "repo")
	assert.Error(t, err)
}
