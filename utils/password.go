package utils

import (
	"brewhouse/config"

	"github.com/matthewhartstonge/argon2"
)

// hashConfig starts from the argon2id defaults and applies any cost
// tuning from the environment. Zero values keep the defaults.
func hashConfig() argon2.Config {
	cfg := argon2.DefaultConfig()
	if app := config.AppConfig; app != nil {
		if app.Argon2TimeCost > 0 {
			cfg.TimeCost = app.Argon2TimeCost
		}
		if app.Argon2MemoryKiB > 0 {
			cfg.MemoryCost = app.Argon2MemoryKiB
		}
	}
	return cfg
}

func HashPassword(password string) (string, error) {
	cfg := hashConfig()
	encoded, err := cfg.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword checks against the parameters encoded in the hash, so
// hashes minted under earlier cost settings keep verifying.
func VerifyPassword(encodedHash, password string) (bool, error) {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	if err != nil {
		return false, err
	}
	return ok, nil
}
