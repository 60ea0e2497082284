package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App     *App
		Token   *Token
		HTTP    *HTTP
		Redis   *Redis
		Backend *Backend
		Uploads *Uploads
	}

	App struct {
		Name string
		Env  string
	}

	Token struct {
		Secret   string
		Duration string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	Redis struct {
		Address  string
		Password string
	}

	// Backend points at the rental REST backend the gateway proxies.
	// ServiceToken is optional and only used by the reference-data
	// warmer, interactive requests always carry the session token.
	Backend struct {
		BaseURL      string
		Timeout      string
		Retries      string
		ServiceToken string
	}

	Uploads struct {
		BaseURL string
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil {
			return nil, err
		}
	}

	app := &App{
		Name: os.Getenv("APP_NAME"),
		Env:  os.Getenv("APP_ENV"),
	}

	token := &Token{
		Secret:   os.Getenv("TOKEN_SECRET"),
		Duration: os.Getenv("TOKEN_DURATION"),
	}

	http := &HTTP{
		Port:           os.Getenv("HTTP_PORT"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            os.Getenv("APP_ENV"),
	}

	redis := &Redis{
		Address:  os.Getenv("REDIS_ADDRESS"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	backend := &Backend{
		BaseURL:      os.Getenv("BACKEND_BASE_URL"),
		Timeout:      os.Getenv("BACKEND_TIMEOUT"),
		Retries:      os.Getenv("BACKEND_RETRIES"),
		ServiceToken: os.Getenv("BACKEND_SERVICE_TOKEN"),
	}

	uploads := &Uploads{
		BaseURL: os.Getenv("UPLOADS_BASE_URL"),
	}
	if uploads.BaseURL == "" {
		uploads.BaseURL = backend.BaseURL
	}

	return &Container{
		App:     app,
		Token:   token,
		HTTP:    http,
		Redis:   redis,
		Backend: backend,
		Uploads: uploads,
	}, nil
}

func (t *Token) DurationParsed() time.Duration {
	d, err := time.ParseDuration(t.Duration)
	if err != nil {
		return 24 * time.Hour // дефолт если ошибка
	}
	return d
}

func (b *Backend) TimeoutParsed() time.Duration {
	d, err := time.ParseDuration(b.Timeout)
	if err != nil {
		return 20 * time.Second
	}
	return d
}

func (b *Backend) RetriesInt() int {
	retries, err := strconv.Atoi(b.Retries)
	if err != nil {
		return 3
	}
	return retries
}
