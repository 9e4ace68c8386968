// Package server wires the sessiond HTTP routes.
package server
