package vault

import (
	"fmt"
	"os"
	"path/filepath"
)

// Slot filenames inside the vault. The tracker persists two independent
// slots: the serialized asset collection and the sequence counter.
const (
	AssetsSlotFile  = "assets.json"
	CounterSlotFile = "counter"
)

// Vault represents the managed storage directory for sat
type Vault struct {
	RootPath   string
	ConfigPath string
}

// New creates a new Vault instance with XDG-compliant paths
func New() (*Vault, error) {
	rootPath, rootErr := getVaultRoot()
	configPath, configErr := getConfigPath()
	if rootErr != nil {
		return nil, fmt.Errorf("failed to determine vault root: %w", rootErr)
	}
	if configErr != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", configErr)
	}

	return &Vault{
		RootPath:   rootPath,
		ConfigPath: configPath,
	}, nil
}

// getVaultRoot returns the vault root directory path
// Follows XDG Base Directory specification on Unix and uses AppData on Windows
func getVaultRoot() (string, error) {
	// Check XDG_DATA_HOME first (Unix-like systems)
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, "sat"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Check if we're on Windows by looking for APPDATA
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "sat"), nil
	}

	// Fall back to ~/.local/share/sat (Unix-like systems)
	return filepath.Join(homeDir, ".local", "share", "sat"), nil
}

func getConfigPath() (string, error) {
	// Check XDG_CONFIG_HOME first (Unix-like systems)
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "sat", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "sat-config", "config.yaml"), nil
	}

	// Fall back to ~/.config/sat/config.yaml (Unix-like systems)
	return filepath.Join(homeDir, ".config", "sat", "config.yaml"), nil
}

// Initialize creates the vault directory if it doesn't exist
func (v *Vault) Initialize() error {
	if err := os.MkdirAll(v.RootPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", v.RootPath, err)
	}
	return nil
}

// Exists checks if the vault has been initialized
func (v *Vault) Exists() bool {
	info, err := os.Stat(v.RootPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// AssetsSlotPath returns the full path of the collection slot
func (v *Vault) AssetsSlotPath() string {
	return filepath.Join(v.RootPath, AssetsSlotFile)
}

// CounterSlotPath returns the full path of the counter slot
func (v *Vault) CounterSlotPath() string {
	return filepath.Join(v.RootPath, CounterSlotFile)
}
