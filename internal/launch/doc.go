// Package launch coordinates the end-to-end workflow of provisioning a GitHub
// repository and publishing a local directory to it.
package launch
