// File: protocol/timestamp.go
// License: Apache-2.0

package protocol

import "time"

// timestampLayout renders a UTC instant with millisecond precision, always
// exactly TimestampLen bytes. The fixed width is what lets every template
// carry a constant Content-Length.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// TimestampLen is the rendered byte length of one timestamp.
const TimestampLen = len(timestampLayout)

// appendTimestamp appends the formatted UTC instant to dst.
func appendTimestamp(dst []byte, now time.Time) []byte {
	return now.UTC().AppendFormat(dst, timestampLayout)
}
