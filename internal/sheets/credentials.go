package sheets

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/AgredaLem023/backend-parlamento/internal/config"
)

// ServiceAccount is the credential bundle expected by the Google auth
// libraries, mirroring the service account key file layout.
type ServiceAccount struct {
	Type                string `json:"type"`
	ProjectID           string `json:"project_id"`
	PrivateKeyID        string `json:"private_key_id,omitempty"`
	PrivateKey          string `json:"private_key"`
	ClientEmail         string `json:"client_email"`
	ClientID            string `json:"client_id,omitempty"`
	AuthURI             string `json:"auth_uri,omitempty"`
	TokenURI            string `json:"token_uri,omitempty"`
	AuthProviderCertURL string `json:"auth_provider_x509_cert_url,omitempty"`
	ClientCertURL       string `json:"client_x509_cert_url,omitempty"`
	UniverseDomain      string `json:"universe_domain,omitempty"`
}

// LoadCredentials resolves the service account bundle. It first tries the
// single GOOGLE_CREDENTIALS_JSON blob; if that is absent or unparsable it
// assembles the bundle from the split GOOGLE_* fields.
func LoadCredentials(cfg config.SheetsConfig) (*ServiceAccount, error) {
	if cfg.CredentialsJSON != "" {
		var sa ServiceAccount
		err := json.Unmarshal([]byte(cfg.CredentialsJSON), &sa)
		if err == nil {
			log.Println("Loaded Google Sheets credentials from GOOGLE_CREDENTIALS_JSON")
			return &sa, nil
		}
		log.Printf("Error parsing GOOGLE_CREDENTIALS_JSON: %v, falling back to individual variables", err)
	}

	g := cfg.Google
	sa := &ServiceAccount{
		Type:                g.AccountType,
		ProjectID:           g.ProjectID,
		PrivateKeyID:        g.PrivateKeyID,
		PrivateKey:          strings.ReplaceAll(g.PrivateKey, `\n`, "\n"),
		ClientEmail:         g.ClientEmail,
		ClientID:            g.ClientID,
		AuthURI:             g.AuthURI,
		TokenURI:            g.TokenURI,
		AuthProviderCertURL: g.AuthProviderCertURL,
		ClientCertURL:       g.ClientCertURL,
		UniverseDomain:      g.UniverseDomain,
	}

	for field, value := range map[string]string{
		"project_id":   sa.ProjectID,
		"private_key":  sa.PrivateKey,
		"client_email": sa.ClientEmail,
	} {
		if value == "" {
			return nil, fmt.Errorf("missing required Google Sheets credential: %s", field)
		}
	}

	log.Println("Loaded Google Sheets credentials from individual environment variables")
	return sa, nil
}

// JSON renders the bundle back to the key file format consumed by
// google.JWTConfigFromJSON.
func (sa *ServiceAccount) JSON() ([]byte, error) {
	return json.Marshal(sa)
}
