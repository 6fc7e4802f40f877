//go:build noupdatecheck

package updatecheck

// Enabled reports whether this build carries the update check at all.
const Enabled = false
