package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values. Unlike a server
// deployment, every value has a usable default so the tool works without a
// .env file.
type Config struct {
	MazePath     string // ASCII map the simulations run on
	SensorSize   int    // side of the perception window (odd, >= 3)
	MaxCycles    int    // hard cycle cap per run
	RandomSeed   int64  // seed for the RandomWalk strategy
	FoodSensor   bool   // enable SensorGreedy's directional food fallback
	ResultsDir   string // output directory for HTML/frames/video artifacts
	FrameDelayMS int    // terminal playback delay per frame
	HostIP       string // bind address for the REST API
	RESTPort     int    // port for the REST API
	GinMode      string // mode for the Gin framework (e.g., release, debug, test)
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file when one exists.
func initConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		MazePath:     getEnvWithDefault("MAZE_PATH", "maps/maze.txt"),
		SensorSize:   getEnvAsIntWithDefault("SENSOR_SIZE", 3),
		MaxCycles:    getEnvAsIntWithDefault("MAX_CYCLES", 500),
		RandomSeed:   int64(getEnvAsIntWithDefault("RANDOM_SEED", 1)),
		FoodSensor:   getEnvAsBoolWithDefault("FOOD_SENSOR", false),
		ResultsDir:   getEnvWithDefault("RESULTS_DIR", "results"),
		FrameDelayMS: getEnvAsIntWithDefault("FRAME_DELAY_MS", 300),
		HostIP:       getEnvWithDefault("HOST_IP", "127.0.0.1"),
		RESTPort:     getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:      getEnvWithDefault("GIN_MODE", "release"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns
// a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer,
// logging a fatal error when the value cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsBoolWithDefault retrieves an environment variable as a boolean,
// logging a fatal error when the value cannot be parsed.
func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a boolean: %v", key, err)
	}
	return value
}
