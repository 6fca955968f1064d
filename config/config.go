package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	Preemptive            bool
	LogLevel              string
	LogFormat             string
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once per process.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		c, err := LoadSchedulerConfig("")
		if err != nil {
			log.Fatalln(err)
		}
		config = c
	})

	return config
}

// LoadSchedulerConfig reads file, or config.yaml from the working directory
// when file is empty. A missing default file is not an error. Environment
// variables prefixed with SCHEDULER_ override file values, e.g.
// SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM=4.
func LoadSchedulerConfig(file string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.preemptive", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	c := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		Preemptive:            v.GetBool("scheduler.preemptive"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return nil, errors.New("scheduler.round_robin.time_quantum must be positive")
	}
	return c, nil
}
