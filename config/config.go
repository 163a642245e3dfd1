package config

import (
	"encoding/json"
	"log"
	"os"
)

type Configuration struct {
	ApiPort string `json:"api_port"`

	Database string `json:"database"` // "sqlite3" or "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	Security struct {
		SessionSecret string `json:"session_secret"`
	} `json:"security"`
}

// Get loads the configuration from a JSON file. A missing file is not fatal:
// local dev can run entirely on defaults plus environment variables.
func Get(path string) Configuration {
	var c Configuration

	b, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(b, &c); err != nil {
			log.Fatal(err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatal(err)
	}

	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		c.Security.SessionSecret = v
	}
	if c.Security.SessionSecret == "" {
		c.Security.SessionSecret = "CHANGE_ME"
	}

	return c
}
