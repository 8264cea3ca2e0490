package core

import (
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/consulta-ai/consulta-ai/app/core/srv"
	"github.com/consulta-ai/consulta-ai/pkg/rag"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}

	return *conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr string `toml:"addr"`
	Log  Log    `toml:"log"`

	// the pgvector-backed knowledge index
	VectorDB PGConfig `toml:"vector_db"`
	// the relational database questions are answered from
	Datasource DatasourceConfig `toml:"datasource"`

	AI       srv.AIConfig        `toml:"ai"`
	RAG      rag.Config          `toml:"rag"`
	Training rag.TrainingContent `toml:"training"`
	Security Security            `toml:"security"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = envOr("CONSULTA_SERVICE_ADDR", ":8000")
	c.Log.Level = envOr("CONSULTA_LOG_LEVEL", "info")
	c.Log.Path = os.Getenv("CONSULTA_LOG_PATH")
	c.VectorDB.DSN = os.Getenv("CONSULTA_VECTOR_DSN")
	c.Datasource.Driver = envOr("CONSULTA_DATASOURCE_DRIVER", "mysql")
	c.Datasource.DSN = os.Getenv("CONSULTA_DATASOURCE_DSN")
	c.AI.Token = os.Getenv("OPENAI_API_KEY")
	c.AI.Endpoint = os.Getenv("OPENAI_API_ENDPOINT")
	c.AI.ChatModel = os.Getenv("CONSULTA_CHAT_MODEL")
	c.AI.EmbeddingModel = os.Getenv("CONSULTA_EMBEDDING_MODEL")
	c.Security.JWTSecret = os.Getenv("CONSULTA_JWT_SECRET")
	c.Security.AdminUser = envOr("CONSULTA_ADMIN_USER", "admin")
	c.Security.AdminPassword = os.Getenv("CONSULTA_ADMIN_PASSWORD")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l Log) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

type DatasourceConfig struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

func (c DatasourceConfig) FormatDSN() string {
	return c.DSN
}

func (c DatasourceConfig) DriverName() string {
	return c.Driver
}

type Security struct {
	JWTSecret     string `toml:"jwt_secret"`
	AdminUser     string `toml:"admin_user"`
	AdminPassword string `toml:"admin_password"`
	// access token lifetime in minutes
	TokenExpireMinutes int `toml:"token_expire_minutes"`
}

func (s Security) ExpireMinutes() int {
	if s.TokenExpireMinutes <= 0 {
		return 120
	}
	return s.TokenExpireMinutes
}
