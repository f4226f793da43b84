package config

import (
	"github.com/kelseyhightower/envconfig"
)

type InstanceConfig struct {
	TelegramBotToken string `envconfig:"telegram_bot_token" default:""`

	OpenAIApiKey           string `envconfig:"openai_api_key" default:""`
	OpenAIBaseUrl          string `envconfig:"openai_base_url" default:"https://api.openai.com/v1/"`
	OpenAIModelName        string `envconfig:"openai_model_name" default:"gpt-4.1-nano"`
	OpenAITimeoutSeconds   int    `envconfig:"openai_timeout_seconds" default:"30"`
	ClassifierCacheSeconds int    `envconfig:"classifier_cache_seconds" default:"120"`

	DataFile string `envconfig:"data_file" default:"./moderation_data.json"`

	MetricsBind string `envconfig:"http_metrics_bind" default:"0.0.0.0:8081"`

	ProcessingPoolSize int    `envconfig:"processing_pool_size" default:"25"`
	AuditPoolSize      int    `envconfig:"audit_pool_size" default:"5"`
	AuditWebhookUrl    string `envconfig:"audit_webhook_url" default:""`

	// Sender IDs or usernames (glob patterns) which are never moderated.
	ExemptSenders []string `envconfig:"exempt_senders" default:""`

	BackupIntervalMinutes int `envconfig:"backup_interval_minutes" default:"30"`
}

func NewInstanceConfig() (*InstanceConfig, error) {
	cnf := &InstanceConfig{}
	err := envconfig.Process("gg", cnf)
	return cnf, err
}
