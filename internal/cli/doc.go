// Package cli defines the Cobra command tree for the moka CLI. The use and
// compile commands, along with the root command's help and version flags,
// only decode the command line and hand it to the dispatch package. The
// remaining commands (inspect, doctor, config, version) are thin wrappers
// over the manifest, bridge and config packages.
package cli
