package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads the env file when present. Deployed environments provide
// real environment variables, so a missing file is not fatal.
func LoadEnvFile(path string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return
	}

	if err := godotenv.Load(path); err != nil {
		log.Printf("error al cargar el archivo %s: %v", path, err)
	}
}
