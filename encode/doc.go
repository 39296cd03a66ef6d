// Package encode renders descriptor trees, materialized trees, and
// operation lists as text.
//
// Trees come out as the same YAML document shape package parse reads,
// so Encode and parse.Parse round trip. EncodeOps renders one line per
// operation for human consumption. Both honor EncodeColors when the
// output is a terminal.
package encode
