package config

type Storage struct {
	ResultsDir string `env:"RESULTS_DIR" envDefault:"results" validate:"required"`
}
