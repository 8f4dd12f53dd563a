// Command ipfs-deploy deploys static websites to IPFS pinning services.
package main

import (
	"os"

	"github.com/meigma/ipfsdeploy/cmd/ipfs-deploy/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
