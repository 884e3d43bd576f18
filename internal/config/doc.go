// Package config manages readerstyle's application preferences.
//
// Preferences live in a YAML file following OS conventions:
//   - Linux: $XDG_CONFIG_HOME/readerstyle/config.yaml or $HOME/.config/readerstyle/config.yaml
//   - macOS: $HOME/.config/readerstyle/config.yaml
//   - Windows: %LOCALAPPDATA%\readerstyle\config.yaml
//
// The file holds how the program runs (catalog file, article file, mouse
// support, preview server, logging). It never holds article rendering
// settings: drafts and applied configurations last only as long as the
// reader session.
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	cfg.Preview.Enabled = true
//	if err := cfg.Save(); err != nil {
//	    return err
//	}
//
// Writes go to a temporary file that is renamed over the target.
package config
