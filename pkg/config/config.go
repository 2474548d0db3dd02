/*
Copyright 2025 Flant JSC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	_ "github.com/joho/godotenv/autoload"
	corev1 "k8s.io/api/core/v1"
)

type Config struct {
	Log      LogConfig      `yaml:"log"`
	Server   ServerConfig   `yaml:"server"`
	Uploader UploaderConfig `yaml:"uploader"`
}

type LogConfig struct {
	Level          string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Output         string `yaml:"output" env:"LOG_OUTPUT" env-default:"stderr"`
	DebugVerbosity int    `yaml:"debugVerbosity" env:"LOG_DEBUG_VERBOSITY" env-default:"0"`
}

type ServerConfig struct {
	ListenAddress string `yaml:"listenAddress" env:"LISTEN_ADDRESS" env-default:":8080"`
}

type UploaderConfig struct {
	Image              string        `yaml:"image" env:"UPLOADER_IMAGE" env-default:"quay.io/kubevirt/kubevirt-disk-uploader:latest"`
	PullPolicy         string        `yaml:"pullPolicy" env:"UPLOADER_PULL_POLICY" env-default:"Always"`
	ServiceAccountName string        `yaml:"serviceAccountName" env:"UPLOADER_SERVICE_ACCOUNT" env-default:"kubevirt-disk-uploader"`
	PushTimeout        time.Duration `yaml:"pushTimeout" env:"UPLOADER_PUSH_TIMEOUT" env-default:"120s"`
	WaitTimeout        time.Duration `yaml:"waitTimeout" env:"EXPORT_WAIT_TIMEOUT" env-default:"30m"`
}

// Load reads the config file if the path is set, then the environment. Environment values win.
func Load(path string) (Config, error) {
	var cfg Config

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("can't load config: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch corev1.PullPolicy(c.Uploader.PullPolicy) {
	case corev1.PullAlways, corev1.PullIfNotPresent, corev1.PullNever:
	default:
		return fmt.Errorf("invalid uploader pull policy %q", c.Uploader.PullPolicy)
	}

	if c.Uploader.PushTimeout <= 0 {
		return fmt.Errorf("uploader push timeout must be positive, got %s", c.Uploader.PushTimeout)
	}

	if c.Uploader.WaitTimeout <= 0 {
		return fmt.Errorf("export wait timeout must be positive, got %s", c.Uploader.WaitTimeout)
	}

	return nil
}
