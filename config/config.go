// Package config exposes the runtime settings of lingochat. Most values come
// from LINGOCHAT_* environment variables, optionally seeded from a .env file.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

//go:embed version
var version string

//go:embed name
var name string

const envPrefix = "LINGOCHAT_"

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

var loadEnvOnce sync.Once

// LoadEnv reads a .env file from the working directory into the process
// environment. Variables that are already set win. A missing file is not an error.
func LoadEnv(files ...string) error {
	var err error
	loadEnvOnce.Do(func() {
		if len(files) == 0 {
			if _, statErr := os.Stat(".env"); statErr != nil {
				return
			}
		}
		err = godotenv.Load(files...)
	})
	return err
}

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func getEnv(key string) string {
	return os.Getenv(envPrefix + key)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := getEnv("LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return getEnv("DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := getEnv("DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "db"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := getEnv("LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "log"
	}
	return logFolderPath
}

func GetListen() string {
	return getEnv("LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(getEnv("PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 5000
	}
	return port
}

// GetSessionSecret returns the cookie signing key. An empty value means the
// server generates a random key at startup, which invalidates sessions on restart.
func GetSessionSecret() string {
	return getEnv("SESSION_SECRET")
}

// GetSessionMaxAge returns the session lifetime in minutes; 0 keeps the
// cookie for the browser session only.
func GetSessionMaxAge() int {
	minutes, err := strconv.Atoi(getEnv("SESSION_MAX_AGE"))
	if err != nil || minutes < 0 {
		return 0
	}
	return minutes
}

// GetWebDomain returns the host name requests must use; empty allows any host.
func GetWebDomain() string {
	return getEnv("DOMAIN")
}

func GetCertFile() string {
	return getEnv("CERT_FILE")
}

func GetKeyFile() string {
	return getEnv("KEY_FILE")
}
