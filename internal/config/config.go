package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	LogLevel string

	// Broker for shop order events. Empty keeps events in process.
	RabbitMQURL    string
	EventsProducer string

	BattleMaxRounds int
	// Seed for archer hit rolls and shape moves; 0 means time based.
	Seed int64

	DefaultCurrency string
}

func Load() Config {
	return Config{
		LogLevel: getenv("LOG_LEVEL", "info"),

		RabbitMQURL:    os.Getenv("RABBITMQ_URL"),
		EventsProducer: getenv("EVENTS_PRODUCER", "oop-showcase"),

		BattleMaxRounds: parseInt(getenv("BATTLE_MAX_ROUNDS", "20"), 20),
		Seed:            int64(parseInt(getenv("SHOWCASE_SEED", "0"), 0)),

		DefaultCurrency: strings.ToUpper(getenv("DEFAULT_CURRENCY", "USD")),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseInt(v string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return def
	}
	return n
}
