// Package pinning implements the remote pinning services a site can be
// deployed to.
//
// Two services are supported:
//
//   - infura: any kubo-compatible HTTP RPC endpoint, by default the public
//     Infura node. The directory is added recursively and the root CID,
//     the last entry of the add response stream, is returned.
//   - pinata: the Pinata pinning API. Requires an API key and a secret API
//     key; files are streamed as one multipart upload.
package pinning
