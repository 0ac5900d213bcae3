// Package export turns drafts into shareable artifacts: mailto links that
// open a prefilled mail client, and plain-text files named after the draft
// title.
package export
