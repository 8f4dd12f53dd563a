package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/meigma/ipfsdeploy/internal/contracts"
	"github.com/meigma/ipfsdeploy/internal/keyring"
)

var deleteSecret bool

var loginCmd = &cobra.Command{
	Use:   "login <key>",
	Short: "Store a secret in the OS keyring",
	Long: `Store a credential in the operating system keyring.

The secret is read from the terminal without echo, or from stdin when it is
not a terminal. Secrets in the keyring are used when the same key is not set
in flags, the environment or the config file.

Keys: ` + strings.Join(keyring.SecretKeys, ", ") + `

Examples:
  ipfs-deploy login pinata.api_key
  echo "$TOKEN" | ipfs-deploy login cloudflare.api_key
  ipfs-deploy login --delete pinata.api_key`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeSecretKeys,
	RunE:              runLogin,
}

func init() {
	loginCmd.Flags().BoolVar(&deleteSecret, "delete", false, "Remove the secret instead of storing it")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(args[0])
	if !keyring.IsSecretKey(key) {
		return fmt.Errorf("%q: %w", key, keyring.ErrUnknownKey)
	}

	var store contracts.SecretWriter = keyring.New()
	if deleteSecret {
		if err := store.Delete(key); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from the keyring\n", key)
		return nil
	}

	secret, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), key)
	if err != nil {
		return err
	}
	if secret == "" {
		return errors.New("empty secret")
	}

	if err := store.Set(key, secret); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Stored %s in the keyring\n", key)
	return nil
}

// readSecret prompts for a secret without echo when in is a terminal, and
// reads the first line of in otherwise.
func readSecret(in io.Reader, prompt io.Writer, key string) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintf(prompt, "%s: ", key)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimSpace(line), nil
}
