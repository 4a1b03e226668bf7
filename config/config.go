package config

import (
	"log"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                            int
	RoundRobinTimeQuantum           int
	RoundRobinContextSwitchOverhead int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml once. A missing file is fine:
// the defaults below apply.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")

		viper.SetDefault("port", 9095)
		viper.SetDefault("scheduler.round_robin.time_quantum", 2)
		viper.SetDefault("scheduler.round_robin.context_switch_overhead", 0)

		if err := viper.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				log.Fatalln(err)
			}
		}

		config = &SchedulerConfig{
			Port:                            viper.GetInt("port"),
			RoundRobinTimeQuantum:           viper.GetInt("scheduler.round_robin.time_quantum"),
			RoundRobinContextSwitchOverhead: viper.GetInt("scheduler.round_robin.context_switch_overhead"),
		}
	})

	return config
}
