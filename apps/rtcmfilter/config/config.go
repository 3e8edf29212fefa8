// Package config reads the JSON config file used by the rtcmfilter
// command, naming which processor functions run and where the rtcmfilter
// writes anything it records.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Config is the JSON-decoded content of the rtcmfilter config file.
type Config struct {
	DisplayMessages bool   `json:"display_messages"`
	RecordMessages  bool   `json:"record_messages"`
	LogDirectory    string `json:"log_directory"`
}

// GetConfig reads and parses the config file named by configFile.
func GetConfig(configFile string) (*Config, error) {
	file, err := os.Open(configFile)
	if err != nil {
		em := fmt.Sprintf("[-] Cannot open config file: %s\n", err.Error())
		slog.Error(em)
		return nil, err
	}
	defer file.Close()

	return getConfigFromReader(file)
}

// getConfigFromReader reads and parses the config from configReader.
func getConfigFromReader(configReader io.Reader) (*Config, error) {
	data := make([]byte, 4096)
	n, errRead := configReader.Read(data)
	if errRead != nil && errRead != io.EOF {
		em := fmt.Sprintf("[-] Error reading config file: %s\n", errRead.Error())
		slog.Error(em)
		return nil, errRead
	}

	config, parseError := parseConfigFromBytes(data[:n])
	if parseError != nil {
		em := fmt.Sprintf("[-] Not a valid config file: %s\n", parseError.Error())
		slog.Error(em)
		return nil, parseError
	}

	return config, nil
}

// parseConfigFromBytes parses the JSON config held in data.
func parseConfigFromBytes(data []byte) (*Config, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}
