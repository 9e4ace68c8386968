// Package cli implements the sessiond command line.
package cli
