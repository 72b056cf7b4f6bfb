package parser

import (
	"regexp"
	"time"
)

var (
	fileNameChannel   = regexp.MustCompile(`^[^_]*_([A-Za-z0-9]+)__`)
	fileNameTimestamp = regexp.MustCompile(`_(\d{14})#`)
)

const (
	fileTimestampLayout = "20060102150405"
	// DateLayout is how test dates are rendered in summaries.
	DateLayout = "2006-01-02 15:04:05"
)

// FileMeta is the metadata encoded in a vendor file name such as
// "G_COM1__Highstar 100Ah__311218541155988_20260225104342#0#1_1_5.xlsx".
type FileMeta struct {
	Serial  string
	Channel string
	Date    string
}

// ParseFileName extracts serial, channel and test date from a file name.
// Parts that are not present are left empty.
func ParseFileName(name string) FileMeta {
	var meta FileMeta
	if serial, ok := SerialFromFileName(name); ok {
		meta.Serial = serial
	}
	if m := fileNameChannel.FindStringSubmatch(name); m != nil {
		meta.Channel = m[1]
	}
	if m := fileNameTimestamp.FindStringSubmatch(name); m != nil {
		if ts, err := time.Parse(fileTimestampLayout, m[1]); err == nil {
			meta.Date = ts.Format(DateLayout)
		}
	}
	return meta
}
