// Package clientdist embeds the browser side of live sessions.
package clientdist

import _ "embed"

// CineverseJS is the live client. It connects to /live, forwards header
// events and swaps in the HTML of every render frame.
//
// It is served at "/_cineverse/client.js".
//go:embed cineverse.js
var CineverseJS []byte
