// Package config fornece as estruturas e a função de carga da configuração
// da aplicação a partir de um arquivo YAML apontado por CONFIG_PATH.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config agrega todas as configurações da aplicação.
type Config struct {
	Env             string `yaml:"env" env-default:"local"`
	HTTPServer      `yaml:"http_server"`
	Storage         `yaml:"storage"`
	RedisConnection `yaml:"redis_connection"`
	RabbitMQ        `yaml:"rabbitmq"`
	Payment         `yaml:"payment"`
	JWTToken        `yaml:"jwttoken"`
	AdminUser       `yaml:"admin_user"`
	SMTP            `yaml:"smtp"`
}

// HTTPServer configura o servidor HTTP.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Storage seleciona o backend de armazenamento das inscrições.
// Driver aceita "memory" ou "postgres"; ConnectionString e MigrationsPath
// só são usados com postgres.
type Storage struct {
	Driver           string `yaml:"driver" env-default:"memory"`
	ConnectionString string `yaml:"connection_string"`
	MigrationsPath   string `yaml:"migrations_path" env-default:"./migrations"`
}

// RedisConnection configura o cache de registros. Desabilitado por padrão.
type RedisConnection struct {
	Enabled      bool          `yaml:"enabled"`
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// RabbitMQ configura a fila de notificações de confirmação.
type RabbitMQ struct {
	Enabled    bool          `yaml:"enabled"`
	URL        string        `yaml:"url"`
	MaxRetries int           `yaml:"max_retries" env-default:"5"`
	RetryDelay time.Duration `yaml:"retry_delay" env-default:"2s"`
}

// Payment seleciona a variante de confirmação de pagamento.
// Mode aceita "stripe" (verificação pelo gateway) ou "manual" (operador
// confirma depois do pagamento via Cakto).
type Payment struct {
	Mode             string `yaml:"mode" env-default:"manual"`
	StripeSecretKey  string `yaml:"stripe_secret_key" env:"STRIPE_SECRET_KEY"`
	CaktoCheckoutURL string `yaml:"cakto_checkout_url" env-default:"https://pay.cakto.com.br/rbkmhmg_551147"`
	WhatsAppNumber   string `yaml:"whatsapp_number" env-default:"5562993555185"`
}

// JWTToken configura a emissão de tokens do painel administrativo.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// AdminUser é o operador criado na subida da aplicação, caso ainda não exista.
type AdminUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD"`
}

// SMTP configura o transporte de e-mail do serviço notificador.
type SMTP struct {
	SMTPHost string `yaml:"smtp_host"`
	SMTPPort string `yaml:"smtp_port" env-default:"587"`
	SMTPUser string `yaml:"smtp_user"`
	SMTPPass string `yaml:"smtp_pass" env:"SMTP_PASS"`
}

// MustLoad carrega a configuração do caminho indicado em CONFIG_PATH e
// encerra o processo se o arquivo não existir ou não puder ser lido.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
