package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server   ServerConfig
	Mail     MailConfig
	Supabase SupabaseConfig
	Sheets   SheetsConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type MailConfig struct {
	Username       string
	Password       string
	From           string
	To             string
	Port           int
	Server         string
	StartTLS       bool
	SSL            bool
	UseCredentials bool
}

type SupabaseConfig struct {
	DBURL string
}

// SheetsConfig carries both the spreadsheet identifiers and the service
// account credential material (single JSON blob or split fields).
type SheetsConfig struct {
	CredentialsJSON string
	SheetID         string
	EventsWorksheet string
	MenuWorksheet   string

	BookingSheetID   string
	BookingWorksheet string

	Google GoogleCredentialFields
}

// GoogleCredentialFields is the split-variable fallback for
// GOOGLE_CREDENTIALS_JSON.
type GoogleCredentialFields struct {
	AccountType         string
	ProjectID           string
	PrivateKeyID        string
	PrivateKey          string
	ClientEmail         string
	ClientID            string
	AuthURI             string
	TokenURI            string
	AuthProviderCertURL string
	ClientCertURL       string
	UniverseDomain      string
}

type CORSConfig struct {
	Origins []string
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"https://parlamento-frontend.onrender.com",
	"https://*.onrender.com",
	"https://www.parlamento.com.bo",
	"https://11dias.visitbolivia.travel",
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Mail: MailConfig{
			Username:       getEnv("MAIL_USERNAME", ""),
			Password:       getEnv("MAIL_PASSWORD", ""),
			From:           getEnv("MAIL_FROM", ""),
			To:             getEnv("MAIL_TO", "claudia@parlamento.com.bo"),
			Port:           getEnvInt("MAIL_PORT", 465),
			Server:         getEnv("MAIL_SERVER", "smtp.gmail.com"),
			StartTLS:       getEnvBool("MAIL_STARTTLS", false),
			SSL:            getEnvBool("MAIL_SSL_TLS", true),
			UseCredentials: getEnvBool("USE_CREDENTIALS", true),
		},
		Supabase: SupabaseConfig{
			DBURL: getEnv("SUPABASE_DB_URL", ""),
		},
		Sheets: SheetsConfig{
			CredentialsJSON:  getEnv("GOOGLE_CREDENTIALS_JSON", ""),
			SheetID:          getEnv("GOOGLE_SHEET_ID", ""),
			EventsWorksheet:  getEnv("GOOGLE_WORKSHEET_NAME", "events_data"),
			MenuWorksheet:    getEnv("MENU_WORKSHEET_NAME", "menu_data"),
			BookingSheetID:   getEnv("BOOKING_SHEET_ID", ""),
			BookingWorksheet: getEnv("BOOKING_WORKSHEET_NAME", "solicitudes_de_reserva_eventos"),
			Google: GoogleCredentialFields{
				AccountType:         getEnv("GOOGLE_ACCOUNT_TYPE", "service_account"),
				ProjectID:           getEnv("GOOGLE_PROJECT_ID", ""),
				PrivateKeyID:        getEnv("GOOGLE_PRIVATE_KEY_ID", ""),
				PrivateKey:          getEnv("GOOGLE_PRIVATE_KEY", ""),
				ClientEmail:         getEnv("GOOGLE_CLIENT_EMAIL", ""),
				ClientID:            getEnv("GOOGLE_CLIENT_ID", ""),
				AuthURI:             getEnv("GOOGLE_AUTH_URI", "https://accounts.google.com/o/oauth2/auth"),
				TokenURI:            getEnv("GOOGLE_TOKEN_URI", "https://oauth2.googleapis.com/token"),
				AuthProviderCertURL: getEnv("GOOGLE_AUTH_PROVIDER_X509_CERT_URL", "https://www.googleapis.com/oauth2/v1/certs"),
				ClientCertURL:       getEnv("GOOGLE_CLIENT_X509_CERT_URL", ""),
				UniverseDomain:      getEnv("GOOGLE_UNIVERSE_DOMAIN", "googleapis.com"),
			},
		},
		CORS: CORSConfig{
			Origins: getEnvList("ALLOWED_ORIGINS", defaultOrigins),
		},
	}
}

// Validate reports every missing required variable in one combined error.
func (c *Config) Validate() error {
	var missing []string

	if c.Mail.Username == "" {
		missing = append(missing, "MAIL_USERNAME")
	}
	if c.Mail.Password == "" {
		missing = append(missing, "MAIL_PASSWORD")
	}
	if c.Mail.From == "" {
		missing = append(missing, "MAIL_FROM")
	}
	if c.Supabase.DBURL == "" {
		missing = append(missing, "SUPABASE_DB_URL")
	}
	if c.Sheets.SheetID == "" {
		missing = append(missing, "GOOGLE_SHEET_ID")
	}

	// Credentials can come from the JSON blob or from the split fields.
	g := c.Sheets.Google
	if c.Sheets.CredentialsJSON == "" &&
		(g.ProjectID == "" || g.PrivateKey == "" || g.ClientEmail == "") {
		missing = append(missing, "GOOGLE_CREDENTIALS_JSON")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		return strings.EqualFold(v, "true")
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
