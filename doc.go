// Package ipfsdeploy deploys static websites to IPFS pinning services.
//
// A deployment resolves a local directory, uploads it to one or more
// pinning services in order, checks that every service computed the same
// content identifier, then optionally copies the gateway URL to the
// clipboard, points a DNSLink record at the new content and opens the site
// in a browser.
//
// # Basic Usage
//
//	d, err := ipfsdeploy.NewDeployer(ipfsdeploy.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := d.Deploy(ctx, ipfsdeploy.DeployRequest{
//	    Path:    "public",
//	    Pinners: []string{ipfsdeploy.PinnerInfura, ipfsdeploy.PinnerPinata},
//	    Credentials: ipfsdeploy.Credentials{
//	        Pinata: ipfsdeploy.PinataConfig{APIKey: key, SecretAPIKey: secret},
//	    },
//	})
//	fmt.Println(result.GatewayURL)
//
// # Pinning Services
//
// The built-in services are infura (a kubo HTTP RPC endpoint) and pinata.
// A failing service does not stop the others; the deployment fails only when
// no service succeeds or the successful ones disagree, in which case the
// error is an *InconsistentPinsError.
//
// # DNS
//
// With DNSProviders set to cloudflare, the TXT record _dnslink.<SiteDomain>
// is set to dnslink=/ipfs/<cid>.
package ipfsdeploy
