package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv.
const (
	EnvConfigPath = "BRIDGEBEAM_CONFIG"
	EnvHoleRadius = "BRIDGEBEAM_HOLE_RADIUS"
	EnvDensity    = "BRIDGEBEAM_DENSITY"
)

// Env is the configuration found in the environment.
type Env struct {
	ConfigPath string
	Flags      Flags
}

// LoadEnv loads the given dotenv files into the process environment and
// reads the BRIDGEBEAM_* variables. Files that do not exist are skipped;
// variables already set in the environment win over the files.
func LoadEnv(files ...string) (Env, error) {
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		present = append(present, f)
	}
	if len(present) > 0 {
		if err := godotenv.Load(present...); err != nil {
			return Env{}, fmt.Errorf("config: load env: %w", err)
		}
	}

	env := Env{ConfigPath: os.Getenv(EnvConfigPath)}

	var err error
	if env.Flags.HoleRadius, err = envFloat(EnvHoleRadius); err != nil {
		return env, err
	}
	if env.Flags.Density, err = envFloat(EnvDensity); err != nil {
		return env, err
	}
	return env, nil
}

func envFloat(key string) (float64, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return v, nil
}
