// Package publish initializes a local directory as a Git repository and pushes
// its initial commit to a previously provisioned remote.
package publish
