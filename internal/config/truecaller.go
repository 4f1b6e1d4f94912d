package config

import "time"

// Truecaller holds the upstream API settings. Endpoints are ordered, primary
// first; the rest are fallbacks tried on transport failure only.
type Truecaller struct {
	Endpoints      []string      `env:"TC_ENDPOINTS" envSeparator:"," envDefault:"https://search5-noneu.truecaller.com/v2/search,https://search5-eu.truecaller.com/v2/search,https://search5.truecaller.com/v2/search" validate:"min=1,dive,url"`
	AuthToken      string        `env:"TC_AUTH_TOKEN,notEmpty" json:"-"`
	UserAgent      string        `env:"TC_USER_AGENT" envDefault:"Truecaller/12.45.7 (Android;10)"`
	RequestTimeout time.Duration `env:"TC_REQUEST_TIMEOUT" envDefault:"15s"`
	CacheTTL       time.Duration `env:"TC_CACHE_TTL" envDefault:"5m"`
	LogFieldMaxLen int           `env:"TC_LOG_FIELD_MAX_LEN" envDefault:"2048"`
}
