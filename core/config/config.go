package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"
	HostKeyName       = "host_key.pem"

	// EnvConfigPath carries the config directory into re-executed children
	// so isolated commands see the same configuration as the parent shell.
	EnvConfigPath = "TINYSH_CONFIG"
)

type Configuration struct {
	// Motd is printed once when the shell starts.
	Motd string `json:"motd"`

	// ColorPrompt colorizes the working directory in the prompt.
	ColorPrompt bool `json:"color_prompt"`

	// DefaultHome is the value HOME and PWD fall back to when the
	// environment doesn't provide them.
	DefaultHome string `json:"default_home" validate:"required"`

	SSHPort int `json:"ssh_port" validate:"gte=0,lte=65535"`

	Uname Uname `json:"uname"`
}

// Uname is the system identity reported by the uname builtin.
type Uname struct {
	KernelName       string `json:"kernel_name" validate:"required"`                // Kernel name e.g. "Linux".
	Nodename         string `json:"nodename" validate:"required,hostname_rfc1123"`  // Hostname of the machine.
	KernelRelease    string `json:"kernel_release" validate:"required"`             // OS release e.g. "5.15.0-56-generic"
	KernelVersion    string `json:"kernel_version" validate:"required"`             // OS version e.g. "#62-Ubuntu SMP ..."
	HardwarePlatform string `json:"hardware_platform" validate:"required"`          // Machine name e.g. "x86_64"
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the embedded default configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
