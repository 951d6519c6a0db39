// Package config provides user settings management for kwfinder.
//
// Settings live in a YAML file following OS-specific conventions:
//   - Linux: $XDG_CONFIG_HOME/kwfinder/config.yaml or $HOME/.config/kwfinder/config.yaml
//   - macOS: $HOME/.config/kwfinder/config.yaml
//   - Windows: %LOCALAPPDATA%\kwfinder\config.yaml
//
// A missing file is not an error: Load returns the defaults. Command line
// flags override whatever the file sets.
//
// # Usage Example
//
//	settings, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	provider, err := settings.NewProvider()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	settings.Output.Format = config.FormatJSON
//	if err := settings.Save(""); err != nil {
//	    log.Fatal(err)
//	}
package config
