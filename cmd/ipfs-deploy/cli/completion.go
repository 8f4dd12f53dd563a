package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/meigma/ipfsdeploy"
	"github.com/meigma/ipfsdeploy/internal/keyring"
)

// completeDeployArgs completes the optional site directory argument.
func completeDeployArgs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return nil, cobra.ShellCompDirectiveFilterDirs
	}
	// No more args expected
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// completePinners suggests the built-in pinning services.
func completePinners(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return matching([]string{ipfsdeploy.PinnerInfura, ipfsdeploy.PinnerPinata}, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeDNSProviders suggests the built-in DNS providers.
func completeDNSProviders(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return matching([]string{ipfsdeploy.DNSCloudflare}, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completeProgress(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return matching([]string{"auto", "tty", "plain"}, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeSecretKeys suggests the configuration keys the keyring accepts.
func completeSecretKeys(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return matching(keyring.SecretKeys, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// matching filters candidates by the prefix being typed. Flags taking
// lists complete the item after the last comma.
func matching(candidates []string, toComplete string) []string {
	prefix := ""
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix, toComplete = toComplete[:i+1], toComplete[i+1:]
	}

	var completions []string
	for _, c := range candidates {
		if strings.HasPrefix(c, toComplete) {
			completions = append(completions, prefix+c)
		}
	}
	return completions
}
