package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestMatching(t *testing.T) {
	t.Parallel()

	candidates := []string{"infura", "pinata"}

	tests := []struct {
		name       string
		toComplete string
		want       []string
	}{
		{name: "empty prefix", toComplete: "", want: []string{"infura", "pinata"}},
		{name: "prefix", toComplete: "pi", want: []string{"pinata"}},
		{name: "no match", toComplete: "x", want: nil},
		{name: "after comma", toComplete: "infura,p", want: []string{"infura,pinata"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, matching(candidates, tt.toComplete))
		})
	}
}

func TestCompleteDeployArgs(t *testing.T) {
	t.Parallel()

	_, directive := completeDeployArgs(nil, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveFilterDirs, directive)

	_, directive = completeDeployArgs(nil, []string{"public"}, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}
