package config

import (
	"errors"
	"os"
	"strings"
)

type Env struct {
	AppAddr     string
	GinMode     string
	JWTSecret   string
	CORSOrigins []string
}

// LoadEnv reads process configuration from the environment.
// JWT_SECRET is mandatory: session tokens must never be signed with a
// baked-in default.
func LoadEnv() (Env, error) {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":5000"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		return Env{}, errors.New("JWT_SECRET is not set")
	}

	var origins []string
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Env{
		AppAddr:     appAddr,
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
		JWTSecret:   secret,
		CORSOrigins: origins,
	}, nil
}
