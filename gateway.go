package ipfsdeploy

// Gateway provider names understood by GatewayURL.
const (
	GatewayIPFS   = "ipfs"
	GatewayInfura = "infura"
	GatewayPinata = "pinata"
)

var gatewayOrigins = map[string]string{
	GatewayIPFS:   "https://ipfs.io",
	GatewayInfura: "https://ipfs.infura.io",
	GatewayPinata: "https://gateway.pinata.cloud",
}

// GatewayURL returns the HTTP gateway URL serving cid through provider's
// gateway. Unknown providers use the public ipfs.io gateway. An empty cid
// returns the bare gateway origin.
func GatewayURL(cid, provider string) string {
	origin, ok := gatewayOrigins[provider]
	if !ok {
		origin = gatewayOrigins[GatewayIPFS]
	}
	if cid == "" {
		return origin
	}
	return origin + "/ipfs/" + cid
}
