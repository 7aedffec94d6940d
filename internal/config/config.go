package config

import (
	"errors"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/klokku/worklog-report/internal/lock"
	"github.com/klokku/worklog-report/pkg/account"
	"github.com/klokku/worklog-report/pkg/tempo"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const DefaultPath = "./config/application.yaml"

var ErrMissingToken = errors.New("TEMPO_TOKEN is not set")

type Application struct {
	Tempo    Tempo    `koanf:"tempo"`
	Accounts Accounts `koanf:"accounts"`
	Report   Report   `koanf:"report"`
	Email    Email    `koanf:"email"`
	Lock     Lock     `koanf:"lock"`
}

type Tempo struct {
	Token        string `koanf:"token"`
	BaseURL      string `koanf:"baseurl"`
	Limit        int    `koanf:"limit"`
	AttributeKey string `koanf:"attributekey"`
	LeaveValue   string `koanf:"leavevalue"`
	AbsenceValue string `koanf:"absencevalue"`
}

type Accounts struct {
	File string `koanf:"file"`
}

type Report struct {
	OutputDir  string `koanf:"outputdir"`
	TrackLeave bool   `koanf:"trackleave"`
}

type Email struct {
	Sender    string `koanf:"sender"`
	Password  string `koanf:"password"`
	Recipient string `koanf:"recipient"`
	Host      string `koanf:"host"`
	Port      int    `koanf:"port"`
}

type Lock struct {
	File string `koanf:"file"`
}

// envKeys maps the environment variables read by the tool to config keys.
var envKeys = map[string]string{
	"TEMPO_TOKEN":         "tempo.token",
	"TEMPO_BASE_URL":      "tempo.baseurl",
	"TEMPO_LIMIT":         "tempo.limit",
	"TEMPO_ATTRIBUTE_KEY": "tempo.attributekey",
	"ACCOUNTS_FILE":       "accounts.file",
	"REPORT_OUTPUT_DIR":   "report.outputdir",
	"EMAIL_SENDER":        "email.sender",
	"EMAIL_PASSWORD":      "email.password",
	"EMAIL_RECIPIENT":     "email.recipient",
	"SMTP_HOST":           "email.host",
	"SMTP_PORT":           "email.port",
	"LOCK_FILE":           "lock.file",
}

func defaults() Application {
	return Application{
		Tempo: Tempo{
			BaseURL:      tempo.DefaultBaseURL,
			Limit:        tempo.DefaultLimit,
			AttributeKey: tempo.DefaultCategoryRules.AttributeKey,
			LeaveValue:   tempo.DefaultCategoryRules.LeaveValue,
			AbsenceValue: tempo.DefaultCategoryRules.AbsenceValue,
		},
		Accounts: Accounts{File: account.DefaultFile},
		Report:   Report{OutputDir: ".", TrackLeave: true},
		Email:    Email{Host: "smtp.gmail.com", Port: 587},
		Lock:     Lock{File: lock.DefaultPath},
	}
}

func Load(path string) (Application, error) {
	return load(path, os.Environ)
}

func load(path string, environ func() []string) (Application, error) {
	var k = koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err := k.Load(env.Provider(".", env.Opt{
		EnvironFunc: environ,
		TransformFunc: func(k, v string) (string, any) {
			key, ok := envKeys[k]
			if !ok || v == "" {
				return "", nil
			}
			return key, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}

// Validate reports every missing setting at once. Email settings are only
// required when the run delivers by email.
func (a Application) Validate(withEmail bool) error {
	var result *multierror.Error
	if strings.TrimSpace(a.Tempo.Token) == "" {
		result = multierror.Append(result, ErrMissingToken)
	}
	if withEmail {
		if a.Email.Sender == "" {
			result = multierror.Append(result, errors.New("EMAIL_SENDER is not set"))
		}
		if a.Email.Password == "" {
			result = multierror.Append(result, errors.New("EMAIL_PASSWORD is not set"))
		}
		if a.Email.Recipient == "" {
			result = multierror.Append(result, errors.New("EMAIL_RECIPIENT is not set"))
		}
		if a.Email.Host == "" {
			result = multierror.Append(result, errors.New("SMTP_HOST is not set"))
		}
	}
	return result.ErrorOrNil()
}

func (a Application) CategoryRules() tempo.CategoryRules {
	return tempo.CategoryRules{
		AttributeKey: a.Tempo.AttributeKey,
		LeaveValue:   a.Tempo.LeaveValue,
		AbsenceValue: a.Tempo.AbsenceValue,
	}
}
