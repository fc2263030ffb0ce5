// Package paths provides centralized path handling for bonsai.
//
// It resolves the traversal root given on the command line and locates the
// configuration files bonsai reads, following the XDG base directory
// specification through github.com/adrg/xdg:
//
//   - User config:    $XDG_CONFIG_HOME/bonsai/config.toml (or $BONSAI_CONFIG)
//   - Project config: <root>/.bonsai.toml
package paths
