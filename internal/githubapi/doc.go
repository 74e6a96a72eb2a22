// Package githubapi provisions repositories on GitHub through the REST API.
package githubapi
