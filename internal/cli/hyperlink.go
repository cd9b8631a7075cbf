package cli

// wrapHyperlink wraps url in an OSC 8 sequence so terminal emulators
// render it as a clickable link. The BEL terminator is more widely
// supported than ST.
func wrapHyperlink(url string) string {
	return "\x1b]8;;" + url + "\x07" + url + "\x1b]8;;\x07"
}
