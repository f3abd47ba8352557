// Package constants provides application-wide constant values: the ASCII
// logo and tagline shown by the --logo flag.
package constants
