package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Configuration stores the known publisher profiles and the name of the
// active one.
type Configuration struct {
	Profiles []Profile `json:"profiles"`
	Profile  string    `json:"profile"`
}

// Profile is one stored publishing service: its base endpoint and an
// optional API key sent with each request.
type Profile struct {
	Name     string `json:"name"`
	Endpoint string `json:"endpoint"`
	ApiKey   string `json:"apiKey,omitempty"`
}

// GetProfile returns the active profile, falling back to the first stored
// one. Returns nil without error when no profile is stored at all.
func GetProfile() (*Profile, error) {
	config, err := GetConfiguration()
	if err != nil {
		return nil, err
	}

	for _, profile := range config.Profiles {
		if profile.Name == config.Profile {
			return &profile, nil
		}
	}

	if len(config.Profiles) > 0 {
		return &config.Profiles[0], nil
	}

	return nil, nil
}

func StoreConfiguration(config *Configuration) error {
	configFile, err := getConfigFile()
	if err != nil {
		return err
	}

	jsonData, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %v", err)
	}

	file, err := os.Create(configFile)
	if err != nil {
		return fmt.Errorf("failed to create config file: %v", err)
	}

	defer file.Close()

	_, err = file.Write(jsonData)
	if err != nil {
		return fmt.Errorf("failed to write config: %v", err)
	}

	return nil
}

func GetConfiguration() (*Configuration, error) {
	configFile, err := getConfigFile()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		defaultConfig := Configuration{
			Profiles: make([]Profile, 0),
			Profile:  "",
		}

		return &defaultConfig, nil
	}

	jsonData, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	config := Configuration{}

	err = json.Unmarshal(jsonData, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to convert from JSON: %v", err)
	}

	return &config, nil
}

func GetWorkingDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to fetch user directory: %v", err)
	}

	configDir := filepath.Join(homeDir, ".gamepub")

	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		err := os.MkdirAll(configDir, os.ModePerm)
		if err != nil {
			return "", fmt.Errorf("failed to create config directory: %v", err)
		}
	}

	return configDir, nil
}

func getConfigFile() (string, error) {
	workingDir, err := GetWorkingDir()
	if err != nil {
		return workingDir, err
	}

	configFile := filepath.Join(workingDir, "config.json")
	return configFile, nil
}
