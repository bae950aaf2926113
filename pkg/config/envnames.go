package config

// EnvPrefix is the envconfig prefix shared by every variable.
const EnvPrefix = "rotikita"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv   = "ROTIKITA_APP_ENV"
	EnvPort     = "ROTIKITA_APP_PORT"
	EnvDBDSN    = "ROTIKITA_DB_DSN"
	EnvDBHost   = "ROTIKITA_DB_HOST"
	EnvDBUser   = "ROTIKITA_DB_USER"
	EnvDBName   = "ROTIKITA_DB_NAME"
	EnvRedisURL = "ROTIKITA_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
