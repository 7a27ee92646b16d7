package config

// Config holds all configuration for the application.
type Config struct {
	Port       string
	OutputDir  string
	Workers    int
	TBA        TBAConfig
	Statbotics StatboticsConfig
}

// TBAConfig holds connection settings for The Blue Alliance API.
type TBAConfig struct {
	Host   string
	APIKey string
}

// StatboticsConfig holds connection settings for the Statbotics API.
type StatboticsConfig struct {
	Host string
}
