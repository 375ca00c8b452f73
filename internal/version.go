package internal

// Version is the application version, overridable with
// -ldflags "-X codeberg.org/snonux/spellout/internal.Version=..."
var Version = "0.3.0"
