package version

// Version is the semantic version of the fmeflowctl CLI.
var Version = "0.1.0"
